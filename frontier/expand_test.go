package frontier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
)

const knows = core.EdgeLabelID(1)

func triangleBackend() *backend.MemoryBackend[int] {
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(2, 3, knows, false, nil)
	b.AddEdge(3, 4, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)
	return b
}

func TestExpand_BasicOneHop(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)
	sources := frontier.New(1)

	result, err := frontier.Expand[int](context.Background(), b, sources, step, nil, core.NoLimit, core.NoLimit)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 3}, result.Slice())
}

func TestExpand_ExcludesVisited(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)
	sources := frontier.New(2, 3) // layer-1 frontier from source 1
	visited := frontier.New(1, 2, 3)

	result, err := frontier.Expand[int](context.Background(), b, sources, step, &visited, core.NoLimit, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, result.Slice())
}

func TestExpand_ResidualZero_NoBackendCall(t *testing.T) {
	b := backend.NewMemoryBackend[int](nil) // empty backend; any call would return empty anyway
	step := core.NewEdgeStep(core.BOTH, 10)
	sources := frontier.New(1)

	result, err := frontier.Expand[int](context.Background(), b, sources, step, nil, 0, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Len())
}

func TestExpand_ResidualShortCircuit(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)
	sources := frontier.New(1)

	result, err := frontier.Expand[int](context.Background(), b, sources, step, nil, 1, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Len())
}

func TestExpandPerLabel_AppliesLimitIndependentlyPerLabel(t *testing.T) {
	likes := core.EdgeLabelID(2)
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)
	b.AddEdge(1, 4, likes, false, nil)
	b.AddEdge(1, 5, likes, false, nil)

	step := core.NewEdgeStep(core.BOTH, 10).WithLabel(knows, "knows").WithLabel(likes, "likes").WithLimit(1)
	sources := frontier.New(1)

	result, err := frontier.ExpandPerLabel[int](context.Background(), b, sources, step, nil, core.NoLimit)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 4}, result.Slice())
}

func TestExpandPerLabel_NoLabels_BehavesLikeBuild(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 10)
	sources := frontier.New(1)

	result, err := frontier.ExpandPerLabel[int](context.Background(), b, sources, step, nil, core.NoLimit)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 3}, result.Slice())
}
