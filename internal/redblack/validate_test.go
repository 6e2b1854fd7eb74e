package redblack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSevenTree(t *testing.T) *Tree {
	tree := New()
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, tree.Validate())
	return tree
}

func TestValidateRedRoot(t *testing.T) {
	tree := newSevenTree(t)
	tree.storage()[tree.root].color = red
	err := tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is red")
}

func TestValidateRedRed(t *testing.T) {
	tree := New()
	insertKeys(t, tree, 10, 20, 30, 40)
	// 20 is the black root, 10 and 30 are black, 40 is red
	alloc := tree.storage()
	thirty := tree.Find(30).index
	alloc[thirty].color = red
	err := tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "has red child")
}

func TestValidateBlackHeight(t *testing.T) {
	tree := New()
	insertKeys(t, tree, 10, 20, 30)
	alloc := tree.storage()
	alloc[tree.Find(10).index].color = black
	err := tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "black heights")
}

func TestValidateOrder(t *testing.T) {
	tree := newSevenTree(t)
	tree.storage()[tree.Find(3).index].key = 100
	err := tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "follows")
}

func TestValidateParentLink(t *testing.T) {
	tree := newSevenTree(t)
	alloc := tree.storage()
	alloc[tree.Find(1).index].parent = tree.Find(7).index
	err := tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to parent")
}

func TestValidateCachedAttributes(t *testing.T) {
	tree := newSevenTree(t)
	tree.count++
	assert.Error(t, tree.Validate())
	tree.count--
	tree.minNode = tree.Find(2).index
	err := tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cached min")
	tree.recomputeMinNode()
	tree.maxNode = tree.Find(6).index
	err = tree.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cached max")
	tree.recomputeMaxNode()
	assert.NoError(t, tree.Validate())
	tree.Clear()
	tree.count = 1
	assert.Error(t, tree.Validate())
}

func TestHeight(t *testing.T) {
	tree := New()
	insertKeys(t, tree, 1)
	assert.Equal(t, 1, tree.Height())
	assert.Equal(t, 1, tree.BlackHeight())
	insertKeys(t, tree, 2, 3)
	assert.Equal(t, 2, tree.Height())
	for i := Key(4); i < 1000; i++ {
		insertKeys(t, tree, i)
	}
	assert.True(t, tree.Height() <= tree.maxHeight())
	assert.True(t, tree.Height() >= 10)
}

func TestSerialize(t *testing.T) {
	tree := New()
	assert.Equal(t, "digraph RBTree {\n  node [style=filled fontcolor=white]\n}", tree.Serialize())
	insertKeys(t, tree, 10, 20, 30)
	dot := tree.Serialize()
	assert.True(t, strings.HasPrefix(dot, "digraph RBTree {\n"))
	assert.Contains(t, dot, "\"#2 20\" [fillcolor=black]")
	assert.Contains(t, dot, "\"#1 10\" [fillcolor=red]")
	assert.Contains(t, dot, "\"#2 20\" -> \"#1 10\" [label=L]")
	assert.Contains(t, dot, "\"#2 20\" -> \"#3 30\" [label=R]")
}

func TestWalk(t *testing.T) {
	tree := New()
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7)
	var keys []Key
	var depths []int
	tree.Walk(func(depth int, n Node) {
		keys = append(keys, n.Key())
		depths = append(depths, depth)
	})
	// 2(1, 4(3, 6(5, 7)))
	assert.Equal(t, []Key{2, 1, 4, 3, 6, 5, 7}, keys)
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3, 3}, depths)
}
