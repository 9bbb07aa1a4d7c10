package guard_test

import (
	"fmt"

	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/guard"
)

// ExampleCheckSkipDegreeInvariants shows the cross-field rejection spec
// §3 requires: a finite degree must stay below a finite capacity.
func ExampleCheckSkipDegreeInvariants() {
	err := guard.CheckSkipDegreeInvariants(0, 10, 3)
	fmt.Println(err)
	// Output:
	// core: invalid parameter degree=10: must be < capacity
}
