package redblack

import "github.com/pkg/errors"

var (
	// ErrOutOfMemory is returned by Insert() when the bound Allocator cannot hand out another node.
	ErrOutOfMemory = errors.New("rbtree: out of nodes")
	// ErrStaleNode is returned by Erase() for nil nodes, nodes of other trees and released nodes.
	ErrStaleNode = errors.New("rbtree: stale node")
	// ErrInsufficientCapacity is returned by ToArray() when the destination is shorter than Len().
	ErrInsufficientCapacity = errors.New("rbtree: insufficient capacity")
)

func doAssert(b bool) {
	if !b {
		panic("rbtree internal assertion failed")
	}
}
