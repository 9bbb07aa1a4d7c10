package simstruct

import (
	"context"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/edgestream"
	"github.com/voxelgraph/traverser/frontier"
)

// neighborsOf materializes vertex's degree/skipDegree-resolved neighbor
// set, in the stream's own (backend-deterministic) order.
func neighborsOf[ID comparable](ctx context.Context, b backend.Backend[ID], vertex ID, step core.EdgeStep) (frontier.Frontier[ID], error) {
	s, err := edgestream.Open[ID](ctx, b, vertex, step, core.NoLimit)
	if err != nil {
		return frontier.Frontier[ID]{}, err
	}
	defer s.Close()

	result := frontier.New[ID]()
	for s.Next() {
		if err := ctx.Err(); err != nil {
			return frontier.Frontier[ID]{}, err
		}
		result.Add(s.Other())
	}
	return result, nil
}
