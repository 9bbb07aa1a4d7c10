package kbfs

import (
	"context"
	"fmt"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/guard"
)

// KOut computes the depth-th layer of a bounded BFS from source (spec
// §4.5). nearest selects between two distinct semantics (spec §9, not a
// bug):
//
//   - nearest == true: the result contains only vertices whose
//     shortest hop count from source equals depth exactly (the
//     cumulative visited set is excluded from every expansion).
//   - nearest == false: the result is the raw depth-th expansion, which
//     may include vertices reachable in fewer hops.
//
// budgets.Capacity bounds the total number of vertices visited across
// every layer, including source. If capacity is exhausted before the
// final layer, KOut fails with core.ErrCapacityExceeded — the partial
// result is discarded, never returned alongside the error (spec §7).
// When nearest == false, a layer's raw re-expansion can include
// vertices already counted in an earlier layer; capacity is still
// charged len(latest) per layer regardless, matching spec §4.5's
// literal "remaining -= |latest|" rather than a distinct-vertex count —
// nearest == false intentionally trades a tighter bound for not having
// to track every layer's visited set.
//
// budgets.Capacity is enforced here, against the running vertex count —
// it is never forwarded as frontier.Expand's query-building capacity
// (that parameter governs the EdgeStep degree/capacity cross-check,
// spec §3, a separate and much smaller context than the whole-BFS
// budget; the two are allowed to disagree, as spec §8's scenario 6 does
// with degree=10 against a capacity of 3).
func KOut[ID comparable](ctx context.Context, b backend.Backend[ID], source ID, step core.EdgeStep, budgets core.Budgets, nearest bool) (frontier.Frontier[ID], error) {
	if err := guard.ValidateBudgets(budgets); err != nil {
		return frontier.Frontier[ID]{}, err
	}

	latest := frontier.New(source)
	all := frontier.New(source)

	remaining := budgets.Capacity
	if remaining != core.NoLimit {
		remaining--
	}

	for layer := 1; layer <= budgets.Depth; layer++ {
		if err := ctx.Err(); err != nil {
			return frontier.Frontier[ID]{}, err
		}

		isLast := layer == budgets.Depth
		residual := remaining
		if isLast && budgets.Limit != core.NoLimit && (remaining == core.NoLimit || budgets.Limit < remaining) {
			residual = budgets.Limit
		}

		var excluded *frontier.Frontier[ID]
		if nearest {
			snapshot := all.Clone()
			excluded = &snapshot
		}

		next, err := frontier.Expand[ID](ctx, b, latest, step, excluded, residual, core.NoLimit)
		if err != nil {
			return frontier.Frontier[ID]{}, err
		}
		if nearest {
			all = all.Union(next)
		}
		latest = next

		if remaining != core.NoLimit {
			remaining -= latest.Len()
			if remaining <= 0 && layer < budgets.Depth {
				return frontier.Frontier[ID]{}, fmt.Errorf("%w: exhausted after layer %d of %d", core.ErrCapacityExceeded, layer, budgets.Depth)
			}
		}
	}
	return latest, nil
}
