package redblack

import (
	"github.com/cyraxred/rbtree/internal"
	"github.com/pkg/errors"
)

// Key is the ordered value stored in every node. Equal keys are allowed.
type Key = int32

// Color is the color of a node. Absent nodes are black.
type Color bool

const (
	// Red nodes never have red children.
	Red Color = false
	// Black nodes are counted in the black height.
	Black Color = true

	red   = Red
	black = Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

type node struct {
	key                 Key
	parent, left, right uint32
	gen                 uint32
	color               Color
	used                bool
}

// Tree is a red-black binary search tree of Key-s which allows duplicates.
//
// The nodes live in an Allocator and link to each other by index; index 0 means
// "no node", so there is no sentinel leaf. A Tree must be used by one goroutine
// at a time, together with every other Tree bound to the same Allocator.
type Tree struct {
	// Root of the tree
	root uint32

	// The minimum and maximum nodes under the tree.
	minNode, maxNode uint32

	// Number of nodes under root, including the root
	count int

	// Nodes allocator
	allocator *Allocator
}

// New creates an empty tree with its own allocator.
func New() *Tree {
	return NewTree(NewAllocator())
}

// NewTree creates an empty tree which allocates nodes in the given allocator.
func NewTree(allocator *Allocator) *Tree {
	return &Tree{allocator: allocator}
}

func (tree *Tree) storage() []node {
	tree.checkAlive()
	return tree.allocator.storage
}

func (tree *Tree) checkAlive() {
	if tree.allocator == nil {
		panic("the tree has been destroyed")
	}
}

// Allocator returns the bound nodes allocator.
func (tree *Tree) Allocator() *Allocator {
	return tree.allocator
}

// Len returns the number of elements in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// Node refers to an element of a Tree.
//
// Erase() copies keys between nodes, so after any Erase() call a Node may hold
// a different key or be released. Released nodes are detected by Live() and
// rejected by Erase(); nodes with replaced keys are not.
type Node struct {
	tree  *Tree
	index uint32
	gen   uint32
}

func (tree *Tree) node(n uint32) Node {
	if n == 0 {
		return Node{}
	}
	return Node{tree: tree, index: n, gen: tree.storage()[n].gen}
}

// Nil checks whether the node is absent.
func (n Node) Nil() bool {
	return n.index == 0
}

// Live checks whether the node still exists in its tree.
func (n Node) Live() bool {
	if n.index == 0 || n.tree.allocator == nil || n.tree.allocator.Hibernated() {
		return false
	}
	return n.tree.allocator.live(n.index, n.gen)
}

// Key returns the key currently stored in the node.
//
// REQUIRES: n.Live()
func (n Node) Key() Key {
	doAssert(n.Live())
	return n.tree.storage()[n.index].key
}

// Color returns the node's color; nil nodes are black.
func (n Node) Color() Color {
	if n.index == 0 {
		return black
	}
	doAssert(n.Live())
	return n.tree.storage()[n.index].color
}

// Equal checks whether both nodes refer to the same element.
func (n Node) Equal(other Node) bool {
	return n == other
}

// Find returns a node equal to key, or a nil node if there is no such element.
// Among duplicates, the first one met on the search path wins.
func (tree *Tree) Find(key Key) Node {
	alloc := tree.storage()
	n := tree.root
	for n != 0 && alloc[n].key != key {
		if key < alloc[n].key {
			n = alloc[n].left
		} else {
			n = alloc[n].right
		}
	}
	return tree.node(n)
}

// Min returns the leftmost node, or a nil node if the tree is empty.
func (tree *Tree) Min() Node {
	return tree.node(tree.minNode)
}

// Max returns the rightmost node, or a nil node if the tree is empty.
func (tree *Tree) Max() Node {
	return tree.node(tree.maxNode)
}

// Insert adds key to the tree and returns the new node. Duplicates are placed
// after the existing equal keys. Returns ErrOutOfMemory if the allocator is
// exhausted, in which case the tree does not change.
func (tree *Tree) Insert(key Key) (Node, error) {
	tree.checkAlive()
	n, err := tree.allocator.malloc()
	if err != nil {
		return Node{}, err
	}
	alloc := tree.storage()
	var parent uint32
	for cur := tree.root; cur != 0; {
		parent = cur
		if key < alloc[cur].key {
			cur = alloc[cur].left
		} else {
			cur = alloc[cur].right
		}
	}
	newNode := &alloc[n]
	newNode.key = key
	newNode.parent = parent
	newNode.color = red
	if parent == 0 {
		tree.root = n
	} else if key < alloc[parent].key {
		alloc[parent].left = n
	} else {
		alloc[parent].right = n
	}
	tree.count++
	if tree.minNode == 0 || key < alloc[tree.minNode].key {
		tree.minNode = n
	}
	if tree.maxNode == 0 || key >= alloc[tree.maxNode].key {
		tree.maxNode = n
	}
	tree.insertFixup(n)
	return tree.node(n), nil
}

// Erase removes the element referred to by n.
//
// The key of n may be replaced by the key of its successor, and the node which
// is released may be a different one. Returns ErrStaleNode if n is nil, belongs
// to another tree or has already been released.
func (tree *Tree) Erase(n Node) error {
	alloc := tree.storage()
	if n.index == 0 {
		return errors.Wrap(ErrStaleNode, "nil node")
	}
	if n.tree != tree {
		return errors.Wrapf(ErrStaleNode, "node #%d belongs to another tree", n.index)
	}
	if !tree.allocator.live(n.index, n.gen) {
		return errors.Wrapf(ErrStaleNode, "node #%d has been released", n.index)
	}
	victim := n.index
	for alloc[victim].left != 0 || alloc[victim].right != 0 {
		next := successor(victim, alloc)
		alloc[victim].key = alloc[next].key
		victim = next
	}
	// a red leaf carries no black height
	if alloc[victim].color == black {
		tree.eraseFixup(victim)
	}
	if parent := alloc[victim].parent; parent == 0 {
		tree.root = 0
	} else if alloc[parent].left == victim {
		alloc[parent].left = 0
	} else {
		alloc[parent].right = 0
	}
	tree.allocator.free(victim)
	tree.count--
	if tree.count == 0 {
		tree.minNode = 0
		tree.maxNode = 0
	} else {
		if tree.minNode == victim {
			tree.recomputeMinNode()
		}
		if tree.maxNode == victim {
			tree.recomputeMaxNode()
		}
	}
	return nil
}

// EraseKey removes one element equal to key. Returns true iff it was found.
func (tree *Tree) EraseKey(key Key) bool {
	n := tree.Find(key)
	if n.Nil() {
		return false
	}
	doAssert(tree.Erase(n) == nil)
	return true
}

// ToArray writes the keys in ascending order to dst and returns how many were written.
// Returns ErrInsufficientCapacity and writes nothing if len(dst) < tree.Len().
func (tree *Tree) ToArray(dst []Key) (int, error) {
	if len(dst) < tree.count {
		return 0, errors.Wrapf(ErrInsufficientCapacity,
			"%d elements do not fit into %d", tree.count, len(dst))
	}
	alloc := tree.storage()
	stack := make([]uint32, 0, tree.maxHeight())
	i := 0
	cur := tree.root
	for cur != 0 || len(stack) > 0 {
		if cur != 0 {
			stack = append(stack, cur)
			cur = alloc[cur].left
			continue
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dst[i] = alloc[cur].key
		i++
		cur = alloc[cur].right
	}
	return i, nil
}

// Keys returns all the keys in ascending order.
func (tree *Tree) Keys() []Key {
	keys := make([]Key, tree.count)
	_, err := tree.ToArray(keys)
	doAssert(err == nil)
	return keys
}

// Clear removes all the nodes from the tree.
func (tree *Tree) Clear() {
	if tree.root != 0 {
		alloc := tree.storage()
		stack := make([]uint32, 1, tree.maxHeight()+1)
		stack[0] = tree.root
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if left := alloc[n].left; left != 0 {
				stack = append(stack, left)
			}
			if right := alloc[n].right; right != 0 {
				stack = append(stack, right)
			}
			tree.allocator.free(n)
		}
	}
	tree.root = 0
	tree.minNode = 0
	tree.maxNode = 0
	tree.count = 0
}

// Destroy releases all the nodes and unbinds the allocator. The tree cannot be used afterwards.
func (tree *Tree) Destroy() {
	tree.Clear()
	tree.allocator = nil
}

// CloneDeep copies the tree into allocator - the nodes are created from scratch.
// On ErrOutOfMemory, the nodes allocated so far are released.
func (tree *Tree) CloneDeep(allocator *Allocator) (*Tree, error) {
	clone := NewTree(allocator)
	nodeMap := make(map[uint32]uint32, tree.count)
	for iter := tree.First(); !iter.Limit(); iter = iter.Next() {
		n, err := allocator.malloc()
		if err != nil {
			for _, cloned := range nodeMap {
				allocator.free(cloned)
			}
			return nil, err
		}
		nodeMap[iter.node] = n
	}
	originStorage := tree.storage()
	cloneStorage := allocator.storage
	for origin, cloned := range nodeMap {
		originNode := originStorage[origin]
		cloneNode := &cloneStorage[cloned]
		cloneNode.key = originNode.key
		cloneNode.color = originNode.color
		cloneNode.left = nodeMap[originNode.left]
		cloneNode.right = nodeMap[originNode.right]
		cloneNode.parent = nodeMap[originNode.parent]
	}
	clone.root = nodeMap[tree.root]
	clone.minNode = nodeMap[tree.minNode]
	clone.maxNode = nodeMap[tree.maxNode]
	clone.count = tree.count
	return clone, nil
}

// maxHeight is the upper bound of the height of a red-black tree with count nodes.
func (tree *Tree) maxHeight() int {
	return internal.HeightBound(tree.count)
}

func (tree *Tree) recomputeMinNode() {
	tree.minNode = leftmost(tree.root, tree.storage())
}

func (tree *Tree) recomputeMaxNode() {
	tree.maxNode = rightmost(tree.root, tree.storage())
}

func leftmost(n uint32, allocator []node) uint32 {
	if n != 0 {
		for allocator[n].left != 0 {
			n = allocator[n].left
		}
	}
	return n
}

func rightmost(n uint32, allocator []node) uint32 {
	if n != 0 {
		for allocator[n].right != 0 {
			n = allocator[n].right
		}
	}
	return n
}
