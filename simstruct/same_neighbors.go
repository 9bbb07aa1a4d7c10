package simstruct

import (
	"context"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/guard"
)

// SameNeighbors materializes N(u) and N(v), each bounded by step's
// degree/skipDegree, intersects them preserving N(u)'s insertion order,
// and truncates the result to limit (spec §4.6, §9 "truncation happens
// after intersection" — iterating N(u) and keeping members of N(v) is
// what keeps that truncation order-stable).
func SameNeighbors[ID comparable](ctx context.Context, b backend.Backend[ID], u, v ID, step core.EdgeStep, limit int) (frontier.Frontier[ID], error) {
	if err := guard.ValidateEdgeStep(step, core.NoLimit, false); err != nil {
		return frontier.Frontier[ID]{}, err
	}
	if err := guard.CheckLimit(limit); err != nil {
		return frontier.Frontier[ID]{}, err
	}

	nu, err := neighborsOf[ID](ctx, b, u, step)
	if err != nil {
		return frontier.Frontier[ID]{}, err
	}
	nv, err := neighborsOf[ID](ctx, b, v, step)
	if err != nil {
		return frontier.Frontier[ID]{}, err
	}

	result := frontier.New[ID]()
	for _, id := range nu.Slice() {
		if !nv.Has(id) {
			continue
		}
		result.Add(id)
		if limit != core.NoLimit && result.Len() >= limit {
			break
		}
	}
	return result, nil
}

// MultiNeighbors generalizes SameNeighbors to an arbitrary set of
// vertices (spec §11, supplemental): the result is the intersection of
// every vertex's neighborhood, iterated in the first vertex's order and
// truncated to limit. Fewer than two vertices is a parameter error —
// there is nothing to intersect.
func MultiNeighbors[ID comparable](ctx context.Context, b backend.Backend[ID], vertices []ID, step core.EdgeStep, limit int) (frontier.Frontier[ID], error) {
	if len(vertices) < 2 {
		return frontier.Frontier[ID]{}, core.NewParameterError("vertices", len(vertices), "must name at least two vertices")
	}
	if err := guard.ValidateEdgeStep(step, core.NoLimit, false); err != nil {
		return frontier.Frontier[ID]{}, err
	}
	if err := guard.CheckLimit(limit); err != nil {
		return frontier.Frontier[ID]{}, err
	}

	neighborhoods := make([]frontier.Frontier[ID], len(vertices))
	for i, vtx := range vertices {
		n, err := neighborsOf[ID](ctx, b, vtx, step)
		if err != nil {
			return frontier.Frontier[ID]{}, err
		}
		neighborhoods[i] = n
	}

	result := frontier.New[ID]()
	for _, id := range neighborhoods[0].Slice() {
		inAll := true
		for _, n := range neighborhoods[1:] {
			if !n.Has(id) {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}
		result.Add(id)
		if limit != core.NoLimit && result.Len() >= limit {
			break
		}
	}
	return result, nil
}
