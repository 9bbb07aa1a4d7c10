package core_test

import (
	"fmt"

	"github.com/voxelgraph/traverser/core"
)

// ExampleEdgeStep_WithLabel shows building a step scoped to a single
// label, the precondition sort-key mode requires.
func ExampleEdgeStep_WithLabel() {
	step := core.NewEdgeStep(core.OUT, 10).WithLabel(core.EdgeLabelID(1), "knows")

	id, ok := step.SingleLabel()
	fmt.Println(id, ok)
	// Output:
	// 1 true
}
