package pathtree_test

import (
	"fmt"

	"github.com/voxelgraph/traverser/pathtree"
)

// ExampleNode_Join fuses a forward chain 1→2→3 with a backward chain
// 5→4→3, both ending at the shared vertex 3. Joining the forward node
// with the backward node's parent (4→5's chain without 3) keeps 3 as the
// single meeting point.
func ExampleNode_Join() {
	forward := pathtree.New(1).Child(2).Child(3)
	backward := pathtree.New(5).Child(4).Child(3)

	joined := forward.Join(backward.Parent())
	fmt.Println(joined)
	// Output:
	// [1 2 3 4 5]
}
