package kbfs_test

import (
	"context"
	"fmt"

	"github.com/voxelgraph/traverser/backend"
	"github.com/voxelgraph/traverser/core"
	"github.com/voxelgraph/traverser/frontier"
	"github.com/voxelgraph/traverser/kbfs"
)

// ExampleKNeighbor shows the depth-2 union of neighbors from vertex 1 on
// a triangle-plus-tail graph: 1-2, 2-3, 3-4, 1-3.
func ExampleKNeighbor() {
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(2, 3, knows, false, nil)
	b.AddEdge(3, 4, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)

	step := core.NewEdgeStep(core.BOTH, 10)
	result, err := kbfs.KNeighbor[int](context.Background(), b, 1, step, 2, core.NoLimit)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Slice())
	// Output:
	// [1 2 3 4]
}

// ExamplePaths shows the full set of meeting-point paths between {1}
// and {4} within two hops on each side.
func ExamplePaths() {
	b := backend.NewMemoryBackend[int](nil)
	b.AddEdge(1, 2, knows, false, nil)
	b.AddEdge(2, 3, knows, false, nil)
	b.AddEdge(3, 4, knows, false, nil)
	b.AddEdge(1, 3, knows, false, nil)

	step := core.NewEdgeStep(core.BOTH, 10)
	set, err := kbfs.Paths[int](context.Background(), b, frontier.New(1), frontier.New(4), step, 2, core.NoLimit, core.NoLimit, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(set.Paths()) > 0)
	// Output:
	// true
}
