package kbfs

import (
	"context"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/guard"
)

// KNeighbor computes the union of every layer 0..depth reachable from
// source (spec §4.5). Unlike KOut, KNeighbor always excludes the
// cumulative visited set from each expansion and has no capacity
// budget of its own — only degree (on step) and limit bound it. It
// exits early once limit is finite and the accumulated result already
// meets it; the per-layer residual is limit - |result|.
func KNeighbor[ID comparable](ctx context.Context, b backend.Backend[ID], source ID, step core.EdgeStep, depth int, limit int) (frontier.Frontier[ID], error) {
	if err := guard.CheckDepth(depth); err != nil {
		return frontier.Frontier[ID]{}, err
	}
	if err := guard.ValidateEdgeStep(step, core.NoLimit, false); err != nil {
		return frontier.Frontier[ID]{}, err
	}
	if err := guard.CheckLimit(limit); err != nil {
		return frontier.Frontier[ID]{}, err
	}

	all := frontier.New(source)
	latest := frontier.New(source)

	for layer := 1; layer <= depth; layer++ {
		if err := ctx.Err(); err != nil {
			return frontier.Frontier[ID]{}, err
		}
		if limit != core.NoLimit && all.Len() >= limit {
			break
		}

		residual := core.NoLimit
		if limit != core.NoLimit {
			residual = limit - all.Len()
		}

		excluded := all.Clone()
		next, err := frontier.Expand[ID](ctx, b, latest, step, &excluded, residual, core.NoLimit)
		if err != nil {
			return frontier.Frontier[ID]{}, err
		}
		all = all.Union(next)
		latest = next
	}
	return all, nil
}
