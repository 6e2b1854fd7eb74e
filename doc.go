/*
Package rbtree implements an ordered multiset of int32 keys on top of a
red-black balanced binary tree.

The tree does not use a sentinel leaf: nodes live in an Allocator and refer to
each other by index, index 0 standing for the absent node, which is black.
Insert, Find, Min, Max and Erase are O(log n); ToArray and Destroy are O(n)
and never recurse. Example:

	tree := rbtree.New()
	for _, key := range []rbtree.Key{10, 20, 30, 20} {
		if _, err := tree.Insert(key); err != nil {
			panic(err)
		}
	}
	if n := tree.Find(20); !n.Nil() {
		_ = tree.Erase(n)
	}
	keys := make([]rbtree.Key, tree.Len())
	tree.ToArray(keys) // [10 20 30]
	tree.Destroy()

Erase replaces the key of the erased node with the key of its in-order
neighbor and releases the neighbor instead, so Node values must not be kept
across Erase calls. Released nodes are detected: Erase returns ErrStaleNode
for them.

A Tree is not safe for concurrent use. Several trees may share an Allocator;
then they share the owner as well. An idle Allocator can be compressed in
memory with Hibernate() and restored with Boot().

cmd/rbtree is the command line harness which benchmarks and checks the tree.
*/
package rbtree
