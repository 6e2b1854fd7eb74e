package rbtree

import (
	"github.com/cyraxred/rbtree/internal/redblack"
)

// Key is the ordered value stored in the tree. Equal keys are allowed.
type Key = redblack.Key

// Color is the color of a tree node.
type Color = redblack.Color

const (
	// Red nodes never have red children.
	Red = redblack.Red
	// Black nodes are counted in the black height.
	Black = redblack.Black
)

// Tree is the red-black tree. See the package documentation.
type Tree = redblack.Tree

// Node refers to an element of a Tree. The zero Node is absent.
type Node = redblack.Node

// Iterator allows scanning tree elements in sort order.
type Iterator = redblack.Iterator

// Allocator holds the nodes of one or more trees.
type Allocator = redblack.Allocator

var (
	// ErrOutOfMemory is returned by Tree.Insert() when the Allocator cannot hand out another node.
	ErrOutOfMemory = redblack.ErrOutOfMemory
	// ErrStaleNode is returned by Tree.Erase() for nil, foreign and released nodes.
	ErrStaleNode = redblack.ErrStaleNode
	// ErrInsufficientCapacity is returned by Tree.ToArray() when the destination is too short.
	ErrInsufficientCapacity = redblack.ErrInsufficientCapacity
)

// New creates an empty tree with its own allocator.
func New() *Tree {
	return redblack.New()
}

// NewTree creates an empty tree which allocates nodes in the given allocator.
func NewTree(allocator *Allocator) *Tree {
	return redblack.NewTree(allocator)
}

// NewAllocator creates a new allocator for Tree's nodes.
func NewAllocator() *Allocator {
	return redblack.NewAllocator()
}
