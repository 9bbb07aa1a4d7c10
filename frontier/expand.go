package frontier

import (
	"context"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/edgequery"
	"github.com/voxelgraph/traverser/edgestream"
)

// Expand produces the set of vertices adjacent to sources under step,
// subject to an optional exclusion set and a residual result cap (spec
// §4.4, component C4):
//
//  1. If residual == 0, return empty — no backend call.
//  2. Open an edge stream per source, in frontier order.
//  3. For each edge, take the "other" endpoint.
//  4. Skip it if excluded contains it.
//  5. Otherwise add it to the result; once residual is finite and the
//     result reaches it, return immediately (short-circuit).
//
// Result iteration order is the order of first insertion — the
// cross-product order of sources × their edge streams — and tests may
// rely on it.
func Expand[ID comparable](ctx context.Context, b backend.Backend[ID], sources Frontier[ID], step core.EdgeStep, excluded *Frontier[ID], residual int, capacity int) (Frontier[ID], error) {
	result := New[ID]()
	if residual == 0 {
		return result, nil
	}

	for _, source := range sources.Slice() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		stream, err := edgestream.Open[ID](ctx, b, source, step, capacity)
		if err != nil {
			return result, err
		}

		for stream.Next() {
			if err := ctx.Err(); err != nil {
				stream.Close()
				return result, err
			}
			other := stream.Other()
			if excluded != nil && excluded.Has(other) {
				continue
			}
			result.Add(other)
			if residual != core.NoLimit && result.Len() >= residual {
				stream.Close()
				return result, nil
			}
		}
		stream.Close()
	}
	return result, nil
}

// ExpandPerLabel is Expand's per-label sibling (spec §9's "limit across
// multiple labels" open question): step's labels are fanned out into
// independent queries via edgequery.BuildPerLabel, each carrying its own
// step.Limit/degree/skipDegree resolution, rather than one combined
// query across every label. A vertex reachable under more than one
// label is still only added to result once. There is no residual
// parameter: each per-label query already enforces step.Limit on its own
// stream, by construction — that per-label enforcement is the behavior
// this function exists to exercise, as distinct from Expand's single
// cross-label residual.
func ExpandPerLabel[ID comparable](ctx context.Context, b backend.Backend[ID], sources Frontier[ID], step core.EdgeStep, excluded *Frontier[ID], capacity int) (Frontier[ID], error) {
	result := New[ID]()

	for _, source := range sources.Slice() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		queries, err := edgequery.BuildPerLabel[ID](b, source, step, capacity)
		if err != nil {
			return result, err
		}

		for _, q := range queries {
			stream, err := edgestream.OpenQuery[ID](ctx, b, source, q, step.Degree, step.SkipDegree)
			if err != nil {
				return result, err
			}
			for stream.Next() {
				if err := ctx.Err(); err != nil {
					stream.Close()
					return result, err
				}
				other := stream.Other()
				if excluded != nil && excluded.Has(other) {
					continue
				}
				result.Add(other)
			}
			stream.Close()
		}
	}
	return result, nil
}
