package simstruct

import (
	"context"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/guard"
)

// JaccardSimilarity computes |N(u) ∩ N(v)| / |N(u) ∪ N(v)|, each
// neighborhood bounded by step's degree/skipDegree (spec §4.6).
//
// When both neighborhoods are empty the ratio is undefined; this
// implementation returns (0, core.ErrEmptyNeighborhood) rather than NaN
// (spec §9's open question, resolved — see the design ledger).
func JaccardSimilarity[ID comparable](ctx context.Context, b backend.Backend[ID], u, v ID, step core.EdgeStep) (float64, error) {
	if err := guard.ValidateEdgeStep(step, core.NoLimit, false); err != nil {
		return 0, err
	}

	nu, err := neighborsOf[ID](ctx, b, u, step)
	if err != nil {
		return 0, err
	}
	nv, err := neighborsOf[ID](ctx, b, v, step)
	if err != nil {
		return 0, err
	}

	if nu.Len() == 0 && nv.Len() == 0 {
		return 0, core.ErrEmptyNeighborhood
	}

	union := nu.Union(nv)
	intersection := 0
	for _, id := range nu.Slice() {
		if nv.Has(id) {
			intersection++
		}
	}
	return float64(intersection) / float64(union.Len()), nil
}
