package redblack

//
// Internal node attribute accessors
//
func getColor(n uint32, allocator []node) Color {
	if n == 0 {
		return black
	}
	return allocator[n].color
}

func isLeftChild(n uint32, allocator []node) bool {
	return n == allocator[allocator[n].parent].left
}

func isRightChild(n uint32, allocator []node) bool {
	return n == allocator[allocator[n].parent].right
}

// Return the node which replaces the key of n on deletion: the leftmost node of
// the right subtree, or the left child if there is no right subtree.
func successor(n uint32, allocator []node) uint32 {
	if allocator[n].right == 0 {
		return allocator[n].left
	}
	m := allocator[n].right
	for allocator[m].left != 0 {
		m = allocator[m].left
	}
	return m
}

/*
rotate promotes n above its parent p and returns p. The direction follows from
which child of p the node n is:

	    P             N
	  A   N   =>    P   C
	     B C       A B

and the mirror image when n is the left child.
*/
func (tree *Tree) rotate(n uint32) uint32 {
	alloc := tree.storage()
	p := alloc[n].parent
	doAssert(p != 0)
	if isRightChild(n, alloc) {
		// Move "B"
		alloc[p].right = alloc[n].left
		if alloc[n].left != 0 {
			alloc[alloc[n].left].parent = p
		}
		alloc[n].left = p
	} else {
		alloc[p].left = alloc[n].right
		if alloc[n].right != 0 {
			alloc[alloc[n].right].parent = p
		}
		alloc[n].right = p
	}
	g := alloc[p].parent
	alloc[n].parent = g
	if g == 0 {
		tree.root = n
	} else if alloc[g].left == p {
		alloc[g].left = n
	} else {
		alloc[g].right = n
	}
	alloc[p].parent = n
	return p
}

// insertFixup restores the invariants after n was attached as a red leaf.
func (tree *Tree) insertFixup(n uint32) {
	alloc := tree.storage()
	for parent := alloc[n].parent; getColor(parent, alloc) == red; parent = alloc[n].parent {
		if parent == tree.root {
			alloc[parent].color = black
			break
		}
		grandparent := alloc[parent].parent
		var uncle uint32
		if isLeftChild(parent, alloc) {
			uncle = alloc[grandparent].right
		} else {
			uncle = alloc[grandparent].left
		}

		if getColor(uncle, alloc) == black {
			// turn the inner grandchild into the outer one
			if isLeftChild(parent, alloc) != isLeftChild(n, alloc) {
				tree.rotate(n)
				parent = n
			}
			tree.rotate(parent)
			alloc[parent].color = black
			alloc[grandparent].color = red
			break
		}

		// red uncle: push the blackness down from the grandparent
		alloc[parent].color = black
		alloc[uncle].color = black
		alloc[grandparent].color = red
		n = grandparent
	}
	alloc[tree.root].color = black
}

// eraseFixup restores the black height around n before the black leaf n is unlinked.
func (tree *Tree) eraseFixup(n uint32) {
	alloc := tree.storage()
	for n != tree.root {
		parent := alloc[n].parent
		sibling := alloc[parent].left
		if sibling == n {
			sibling = alloc[parent].right
		}
		// n carries black height, so must its sibling
		doAssert(sibling != 0)
		closeNephew, distantNephew := alloc[sibling].left, alloc[sibling].right
		if alloc[parent].right == n {
			closeNephew, distantNephew = distantNephew, closeNephew
		}

		switch {
		case getColor(sibling, alloc) == red:
			tree.rotate(sibling)
			alloc[sibling].color = black
			alloc[parent].color = red
		case getColor(distantNephew, alloc) == red:
			tree.rotate(sibling)
			alloc[sibling].color = alloc[parent].color
			alloc[parent].color = black
			alloc[distantNephew].color = black
			return
		case getColor(closeNephew, alloc) == red:
			tree.rotate(closeNephew)
			alloc[closeNephew].color = black
			alloc[sibling].color = red
		case getColor(parent, alloc) == red:
			alloc[sibling].color = red
			alloc[parent].color = black
			return
		default:
			alloc[sibling].color = red
			n = parent
		}
	}
}
