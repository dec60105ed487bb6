package bintree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelab/bintree"
)

func TestBuildHeap_RejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		h, err := bintree.BuildHeap(n)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, bintree.ErrHeapSize)
	}
}

func TestBuildHeap_SingleNode(t *testing.T) {
	h, err := bintree.BuildHeap(1)
	require.NoError(t, err)
	require.Len(t, h, 2)

	assert.Nil(t, h[0], "slot 0 is reserved and must stay nil")
	require.NotNil(t, h[1])
	assert.Nil(t, h[1].Left())
	assert.Nil(t, h[1].Right())
	assert.Equal(t, "1", h[1].Label())
}

func TestBuildHeap_HeapShape(t *testing.T) {
	const n = 15
	h, err := bintree.BuildHeap(n)
	require.NoError(t, err)
	require.Len(t, h, n+1)

	for i := 1; i <= n; i++ {
		require.NotNil(t, h[i], "node %d missing", i)

		if 2*i <= n {
			assert.True(t, bintree.Same(h[i].Left(), h[2*i]),
				"left child of %d must be the shared node %d", i, 2*i)
		} else {
			assert.Nil(t, h[i].Left(), "node %d must be a leaf on the left", i)
		}

		if 2*i+1 <= n {
			assert.True(t, bintree.Same(h[i].Right(), h[2*i+1]),
				"right child of %d must be the shared node %d", i, 2*i+1)
		} else {
			assert.Nil(t, h[i].Right(), "node %d must be a leaf on the right", i)
		}
	}
}

func TestBuildHeap_IncompleteLastLevel(t *testing.T) {
	// 6 nodes: node 3 gets a left child (6) but no right child (7 > n).
	h, err := bintree.BuildHeap(6)
	require.NoError(t, err)

	assert.True(t, bintree.Same(h[3].Left(), h[6]))
	assert.Nil(t, h[3].Right())
}

func TestBuildHeap_WithLabelFn(t *testing.T) {
	h, err := bintree.BuildHeap(3, bintree.WithLabelFn(func(i int) string {
		return fmt.Sprintf("n%d", i)
	}))
	require.NoError(t, err)

	assert.Equal(t, "n1", h[1].Label())
	assert.Equal(t, "n2", h[2].Label())
	assert.Equal(t, "n3", h[3].Label())
}

func TestSame_IsIdentityNotStructure(t *testing.T) {
	// Two structurally identical trees built from distinct allocations.
	first := bintree.NewNode("x", bintree.NewLeaf("y"), bintree.NewLeaf("z"))
	second := bintree.NewNode("x", bintree.NewLeaf("y"), bintree.NewLeaf("z"))

	assert.True(t, bintree.Same(first, first))
	assert.False(t, bintree.Same(first, second),
		"structural twins are distinct nodes")
	assert.False(t, bintree.Same(first.Left(), second.Left()))
}

func TestSame_NilIsNeverANode(t *testing.T) {
	leaf := bintree.NewLeaf("a")

	assert.False(t, bintree.Same(nil, nil))
	assert.False(t, bintree.Same(leaf, nil))
	assert.False(t, bintree.Same(nil, leaf))
}

func TestNodesAreShared(t *testing.T) {
	// The same leaf held by a fixture variable and wired under two parents
	// stays one node; identity survives sharing.
	shared := bintree.NewLeaf("shared")
	left := bintree.NewNode("left", shared, nil)
	right := bintree.NewNode("right", nil, shared)

	assert.True(t, bintree.Same(left.Left(), shared))
	assert.True(t, bintree.Same(right.Right(), shared))
	assert.True(t, bintree.Same(left.Left(), right.Right()))
}

func TestDump_RendersLabels(t *testing.T) {
	root := bintree.NewNode("root",
		bintree.NewNode("a", bintree.NewLeaf("a1"), nil),
		bintree.NewLeaf("b"),
	)

	out := bintree.Dump(root)
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "a1")
	assert.Contains(t, out, "b")
}

func TestDump_PlaceholderForEmptyLabel(t *testing.T) {
	out := bintree.Dump(bintree.NewLeaf(""))
	assert.Contains(t, out, "·")
}
