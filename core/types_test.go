package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelgraph/traverser/core"
)

func TestEdgeStep_SingleLabel(t *testing.T) {
	step := core.NewEdgeStep(core.BOTH, 10)
	_, ok := step.SingleLabel()
	assert.False(t, ok, "no labels means SingleLabel should fail")

	step = step.WithLabel(core.EdgeLabelID(1), "knows")
	id, ok := step.SingleLabel()
	assert.True(t, ok)
	assert.Equal(t, core.EdgeLabelID(1), id)

	step = step.WithLabel(core.EdgeLabelID(2), "follows")
	_, ok = step.SingleLabel()
	assert.False(t, ok, "two labels means SingleLabel should fail")
}

func TestEdgeStep_Chaining_DoesNotMutateShared(t *testing.T) {
	base := core.NewEdgeStep(core.OUT, 5)
	a := base.WithLabel(core.EdgeLabelID(1), "a")
	b := base.WithLabel(core.EdgeLabelID(2), "b")

	assert.Len(t, base.Labels, 0, "base step must stay unmodified")
	assert.Len(t, a.Labels, 1)
	assert.Len(t, b.Labels, 1)
	_, hasA := a.Labels[core.EdgeLabelID(1)]
	_, hasB := b.Labels[core.EdgeLabelID(2)]
	assert.True(t, hasA)
	assert.True(t, hasB)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "OUT", core.OUT.String())
	assert.Equal(t, "IN", core.IN.String())
	assert.Equal(t, "BOTH", core.BOTH.String())
}

func TestDefaultBudgets(t *testing.T) {
	b := core.DefaultBudgets()
	assert.Equal(t, core.DefaultDegree, b.Degree)
	assert.Equal(t, core.DefaultCapacity, b.Capacity)
	assert.Equal(t, core.DefaultLimit, b.Limit)
	assert.Equal(t, core.DefaultSkipDegree, b.SkipDegree)
}
