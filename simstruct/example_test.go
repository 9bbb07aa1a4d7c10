package simstruct_test

import (
	"context"
	"fmt"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/simstruct"
)

// ExampleJaccardSimilarity compares vertices 1 and 3 on a triangle-plus-tail
// graph: 1-2, 2-3, 3-4, 1-3. N(1) = {2,3}, N(3) = {1,2,4}, intersection
// {2}, union {1,2,3,4}: 1/4.
func ExampleJaccardSimilarity() {
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(2, 3, knows, false, nil)
	b.AddEdge(3, 4, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)

	step := core.NewEdgeStep(core.BOTH, 10)
	ratio, err := simstruct.JaccardSimilarity[int](context.Background(), b, 1, 3, step)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ratio)
	// Output:
	// 0.25
}
