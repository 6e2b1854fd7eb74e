package redblack

import (
	"bytes"
	"fmt"
)

// Walk visits the nodes in pre-order (node, left subtree, right subtree).
// depth is 0 for the root. The tree must not be modified during the walk.
func (tree *Tree) Walk(visit func(depth int, n Node)) {
	if tree.root == 0 {
		return
	}
	type frame struct {
		node  uint32
		depth int
	}
	alloc := tree.storage()
	stack := make([]frame, 1, tree.maxHeight()+1)
	stack[0] = frame{tree.root, 0}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(top.depth, tree.node(top.node))
		// push the right child first so that the left one pops first
		if right := alloc[top.node].right; right != 0 {
			stack = append(stack, frame{right, top.depth + 1})
		}
		if left := alloc[top.node].left; left != 0 {
			stack = append(stack, frame{left, top.depth + 1})
		}
	}
}

// Serialize outputs the tree in Graphviz format.
func (tree *Tree) Serialize() string {
	alloc := tree.storage()
	var buffer bytes.Buffer
	buffer.WriteString("digraph RBTree {\n")
	buffer.WriteString("  node [style=filled fontcolor=white]\n")
	label := func(n uint32) string {
		return fmt.Sprintf("\"#%d %d\"", n, alloc[n].key)
	}
	tree.Walk(func(_ int, n Node) {
		fill := "black"
		if alloc[n.index].color == red {
			fill = "red"
		}
		buffer.WriteString(fmt.Sprintf("  %s [fillcolor=%s]\n", label(n.index), fill))
		if left := alloc[n.index].left; left != 0 {
			buffer.WriteString(fmt.Sprintf("  %s -> %s [label=L]\n", label(n.index), label(left)))
		}
		if right := alloc[n.index].right; right != 0 {
			buffer.WriteString(fmt.Sprintf("  %s -> %s [label=R]\n", label(n.index), label(right)))
		}
	})
	buffer.WriteString("}")
	return buffer.String()
}
