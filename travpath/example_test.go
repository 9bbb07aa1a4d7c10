package travpath_test

import (
	"fmt"

	"github.com/voxelgraph/traverser/travpath"
)

// ExamplePathSet_Add shows deduplication by vertex sequence: a second
// path with the same vertices but a different crosspoint is rejected.
func ExamplePathSet_Add() {
	set := travpath.NewPathSet[int]()
	set.Add(travpath.New(1, 2, 3).WithCrosspoint(2))
	added := set.Add(travpath.New(1, 2, 3).WithCrosspoint(99))

	fmt.Println(added, set.Len())
	// Output:
	// false 1
}
