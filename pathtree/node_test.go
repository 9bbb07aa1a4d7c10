package pathtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxelgraph/traverser/pathtree"
)

func TestNode_PathRootToSelf(t *testing.T) {
	root := pathtree.New(1)
	mid := root.Child(2)
	leaf := mid.Child(3)

	assert.Equal(t, []int{1, 2, 3}, leaf.Path())
	assert.Equal(t, 3, leaf.Path()[len(leaf.Path())-1])
	assert.Equal(t, 1, leaf.Path()[0])
}

func TestNode_Contains(t *testing.T) {
	root := pathtree.New("A")
	leaf := root.Child("B").Child("C")

	assert.True(t, leaf.Contains("A"))
	assert.True(t, leaf.Contains("B"))
	assert.True(t, leaf.Contains("C"))
	assert.False(t, leaf.Contains("D"))
}

func TestNode_Join_Disjoint(t *testing.T) {
	// forward: 1 -> 2 -> 3 ; backward: 6 -> 5 -> 4 (meeting would be external)
	forward := pathtree.New(1).Child(2).Child(3)
	backward := pathtree.New(6).Child(5).Child(4)

	joined := forward.Join(backward)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, joined)
}

func TestNode_Join_SharedVertex_ReturnsEmpty(t *testing.T) {
	forward := pathtree.New(1).Child(2).Child(3)
	backward := pathtree.New(5).Child(2) // shares vertex 2 with forward
	assert.Equal(t, []int{}, forward.Join(backward))
}

func TestNode_Equal_StructuralNotPointer(t *testing.T) {
	a := pathtree.New(1).Child(2)
	b := pathtree.New(1).Child(2)
	assert.True(t, a.Equal(b), "nodes with equal id+chain must be equal even if distinct objects")
	assert.Equal(t, a.Hash(), b.Hash())

	c := pathtree.New(5).Child(2) // same leaf id, different parent chain
	assert.False(t, a.Equal(c))
	// intentional under-hash: different chains can still collide on Hash()
	assert.Equal(t, a.Hash(), c.Hash())
}
