package simstruct_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/simstruct"
)

const knows = core.EdgeLabelID(1)

// triangleBackend seeds spec §8's end-to-end scenario graph: vertices
// {1,2,3,4}, undirected edges {(1,2),(2,3),(3,4),(1,3)}.
func triangleBackend() *backend.MemoryBackend[int] {
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(2, 3, knows, false, nil)
	b.AddEdge(3, 4, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)
	return b
}

func TestSameNeighbors_Scenario4(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)

	result, err := simstruct.SameNeighbors[int](context.Background(), b, 1, 3, step, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, result.Slice())
}

func TestJaccardSimilarity_Scenario5(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)

	ratio, err := simstruct.JaccardSimilarity[int](context.Background(), b, 1, 3, step)
	require.NoError(t, err)
	assert.Equal(t, 0.25, ratio)
}

func TestJaccardSimilarity_BothEmpty(t *testing.T) {
	b := backend.NewMemoryBackend[int](nil)
	step := core.NewEdgeStep(core.BOTH, 10)

	_, err := simstruct.JaccardSimilarity[int](context.Background(), b, 1, 2, step)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrEmptyNeighborhood))
}

func TestSameNeighbors_LimitTruncatesAfterIntersection(t *testing.T) {
	b := backend.NewMemoryBackend[int](nil)
	// hub shares {2,3,4} with v; limit truncates to 2 in N(hub)'s own order.
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)
	b.AddEdge(1, 4, knows, false, nil)
	b.AddEdge(5, 2, knows, false, nil)
	b.AddEdge(5, 3, knows, false, nil)
	b.AddEdge(5, 4, knows, false, nil)
	step := core.NewEdgeStep(core.BOTH, 10)

	result, err := simstruct.SameNeighbors[int](context.Background(), b, 1, 5, step, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, result.Slice())
}

func TestMultiNeighbors_IntersectionAcrossThreeVertices(t *testing.T) {
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 10, knows, false, nil)
	b.AddEdge(1, 11, knows, false, nil)
	b.AddEdge(2, 10, knows, false, nil)
	b.AddEdge(2, 12, knows, false, nil)
	b.AddEdge(3, 10, knows, false, nil)
	step := core.NewEdgeStep(core.BOTH, 10)

	result, err := simstruct.MultiNeighbors[int](context.Background(), b, []int{1, 2, 3}, step, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, result.Slice())
}

func TestMultiNeighbors_RequiresAtLeastTwoVertices(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)

	_, err := simstruct.MultiNeighbors[int](context.Background(), b, []int{1}, step, core.NoLimit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrParameter))
}
