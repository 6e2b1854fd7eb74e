package redblack

// Iterator walks the keys of a Tree in ascending or descending order.
//
// Erase() moves keys between nodes and therefore invalidates every iterator
// of the tree. Insert() keeps them valid.
type Iterator struct {
	tree *Tree
	node uint32
}

// First returns the iterator at the minimum key, or the Limit() iterator if the tree is empty.
func (tree *Tree) First() Iterator {
	return Iterator{tree, tree.minNode}
}

// Last returns the iterator at the maximum key, or the NegativeLimit() iterator if the tree is empty.
func (tree *Tree) Last() Iterator {
	if tree.maxNode == 0 {
		return tree.NegativeLimit()
	}
	return Iterator{tree, tree.maxNode}
}

// Limit returns the iterator past the maximum key.
func (tree *Tree) Limit() Iterator {
	return Iterator{tree, 0}
}

// NegativeLimit returns the iterator before the minimum key.
func (tree *Tree) NegativeLimit() Iterator {
	return Iterator{tree, negativeLimitNode}
}

// FindGE returns the iterator at the first key which is not less than key,
// or Limit() if all the keys are less.
func (tree *Tree) FindGE(key Key) Iterator {
	alloc := tree.storage()
	candidate := uint32(0)
	n := tree.root
	for n != 0 {
		if alloc[n].key < key {
			n = alloc[n].right
			continue
		}
		candidate = n
		n = alloc[n].left
	}
	return Iterator{tree, candidate}
}

// FindLE returns the iterator at the last key which is not greater than key,
// or NegativeLimit() if all the keys are greater.
func (tree *Tree) FindLE(key Key) Iterator {
	alloc := tree.storage()
	candidate := uint32(negativeLimitNode)
	n := tree.root
	for n != 0 {
		if alloc[n].key > key {
			n = alloc[n].left
			continue
		}
		candidate = n
		n = alloc[n].right
	}
	return Iterator{tree, candidate}
}

// Equal reports whether both iterators stand at the same position.
func (iter Iterator) Equal(other Iterator) bool {
	return iter.tree == other.tree && iter.node == other.node
}

// Limit reports whether the iterator is past the maximum key.
func (iter Iterator) Limit() bool {
	return iter.node == 0
}

// NegativeLimit reports whether the iterator is before the minimum key.
func (iter Iterator) NegativeLimit() bool {
	return iter.node == negativeLimitNode
}

// Min reports whether the iterator stands at the minimum key.
func (iter Iterator) Min() bool {
	return iter.node != 0 && iter.node == iter.tree.minNode
}

// Max reports whether the iterator stands at the maximum key.
func (iter Iterator) Max() bool {
	return iter.node != 0 && iter.node == iter.tree.maxNode
}

// Key returns the key under the iterator. It panics at either limit.
func (iter Iterator) Key() Key {
	doAssert(!iter.Limit() && !iter.NegativeLimit())
	return iter.tree.storage()[iter.node].key
}

// Node returns the node under the iterator, or the nil Node at either limit.
func (iter Iterator) Node() Node {
	if iter.Limit() || iter.NegativeLimit() {
		return Node{}
	}
	return iter.tree.node(iter.node)
}

// Next steps to the following key. NegativeLimit() steps to First().
// It panics at Limit().
func (iter Iterator) Next() Iterator {
	doAssert(!iter.Limit())
	if iter.NegativeLimit() {
		return iter.tree.First()
	}
	return Iterator{iter.tree, inorderNext(iter.node, iter.tree.storage())}
}

// Prev steps to the preceding key. Limit() steps to Last().
// It panics at NegativeLimit().
func (iter Iterator) Prev() Iterator {
	doAssert(!iter.NegativeLimit())
	if iter.Limit() {
		return iter.tree.Last()
	}
	prev := inorderPrev(iter.node, iter.tree.storage())
	if prev == 0 {
		prev = negativeLimitNode
	}
	return Iterator{iter.tree, prev}
}

// inorderNext returns the in-order successor of n or 0.
func inorderNext(n uint32, alloc []node) uint32 {
	if right := alloc[n].right; right != 0 {
		return leftmost(right, alloc)
	}
	// climb while we come from the right
	for p := alloc[n].parent; p != 0; n, p = p, alloc[p].parent {
		if alloc[p].left == n {
			return p
		}
	}
	return 0
}

// inorderPrev returns the in-order predecessor of n or 0.
func inorderPrev(n uint32, alloc []node) uint32 {
	if left := alloc[n].left; left != 0 {
		return rightmost(left, alloc)
	}
	for p := alloc[n].parent; p != 0; n, p = p, alloc[p].parent {
		if alloc[p].right == n {
			return p
		}
	}
	return 0
}
