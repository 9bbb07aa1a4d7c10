package edgequery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/edgequery"
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

func TestBuild_AppliesLimit(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, core.NoLimit).WithLimit(1)
	q, err := edgequery.Build[int](b, 3, step, core.NoLimit)
	require.NoError(t, err)

	it, err := b.Edges(context.Background(), q)
	require.NoError(t, err)
	defer it.Close()
	count := 0
	for it.Next(context.Background()) {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestBuild_RejectsInvalidStep(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, 0) // degree must be >0 or NoLimit
	_, err := edgequery.Build[int](b, 1, step, core.NoLimit)
	require.Error(t, err)
}

func TestBuildSortKey_RequiresSingleLabel(t *testing.T) {
	b := triangleBackend()
	step := core.NewEdgeStep(core.BOTH, core.NoLimit).
		WithProperty(core.PropertyID(1), "x").
		WithLabel(knows, "knows").
		WithLabel(core.EdgeLabelID(2), "likes")
	_, err := edgequery.BuildSortKey[int](b, 1, step, core.NoLimit)
	require.Error(t, err)
}

func TestCount_PostProcessing(t *testing.T) {
	b := triangleBackend()
	ctx := context.Background()

	// vertex 3 has degree 3; degree budget NoLimit -> exact count
	step := core.NewEdgeStep(core.BOTH, core.NoLimit)
	n, err := edgequery.Count[int](ctx, b, 3, step, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// degree budget above true count -> exact count
	step = core.NewEdgeStep(core.BOTH, 10)
	n, err = edgequery.Count[int](ctx, b, 3, step, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// skipDegree reached -> super-node, count becomes 0
	step = core.NewEdgeStep(core.BOTH, 2).WithSkipDegree(3)
	n, err = edgequery.Count[int](ctx, b, 3, step, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// degree budget below true count, no skipDegree -> degree itself
	step = core.NewEdgeStep(core.BOTH, 2)
	n, err = edgequery.Count[int](ctx, b, 3, step, core.NoLimit)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
