package redblack

import (
	"github.com/pkg/errors"

	"github.com/cyraxred/rbtree/internal"
)

// Validate checks the red-black invariants, the key order, the parent links and the
// cached tree attributes. Returns the first violation found.
func (tree *Tree) Validate() error {
	alloc := tree.storage()
	if tree.root == 0 {
		if tree.count != 0 || tree.minNode != 0 || tree.maxNode != 0 {
			return errors.Errorf("empty tree has count %d, min #%d, max #%d",
				tree.count, tree.minNode, tree.maxNode)
		}
		return nil
	}
	if alloc[tree.root].parent != 0 {
		return errors.Errorf("root #%d has parent #%d", tree.root, alloc[tree.root].parent)
	}
	if alloc[tree.root].color != black {
		return errors.Errorf("root #%d is red", tree.root)
	}
	v := validator{alloc: alloc}
	if _, err := v.validate(tree.root); err != nil {
		return err
	}
	if v.count != tree.count {
		return errors.Errorf("counted %d nodes, but Len() is %d", v.count, tree.count)
	}
	if first := leftmost(tree.root, alloc); first != tree.minNode {
		return errors.Errorf("cached min #%d is not the leftmost #%d", tree.minNode, first)
	}
	if last := rightmost(tree.root, alloc); last != tree.maxNode {
		return errors.Errorf("cached max #%d is not the rightmost #%d", tree.maxNode, last)
	}
	return nil
}

type validator struct {
	alloc   []node
	count   int
	prev    Key
	hasPrev bool
}

// validate walks the subtree in order and returns its black height.
func (v *validator) validate(n uint32) (int, error) {
	if n == 0 {
		return 0, nil
	}
	current := v.alloc[n]
	if !current.used {
		return 0, errors.Errorf("node #%d is released but reachable", n)
	}
	for _, child := range [2]uint32{current.left, current.right} {
		if child == 0 {
			continue
		}
		if v.alloc[child].parent != n {
			return 0, errors.Errorf("node #%d is a child of #%d but points to parent #%d",
				child, n, v.alloc[child].parent)
		}
		if current.color == red && v.alloc[child].color == red {
			return 0, errors.Errorf("red node #%d (key %d) has red child #%d", n, current.key, child)
		}
	}
	leftHeight, err := v.validate(current.left)
	if err != nil {
		return 0, err
	}
	if v.hasPrev && current.key < v.prev {
		return 0, errors.Errorf("key %d of node #%d follows %d", current.key, n, v.prev)
	}
	v.prev = current.key
	v.hasPrev = true
	v.count++
	rightHeight, err := v.validate(current.right)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, errors.Errorf("node #%d (key %d) has black heights %d on the left and %d on the right",
			n, current.key, leftHeight, rightHeight)
	}
	if current.color == black {
		leftHeight++
	}
	return leftHeight, nil
}

// BlackHeight returns the number of black nodes on the path from the root to the leftmost absent child.
func (tree *Tree) BlackHeight() int {
	alloc := tree.storage()
	height := 0
	for n := tree.root; n != 0; n = alloc[n].left {
		if alloc[n].color == black {
			height++
		}
	}
	return height
}

// Height returns the number of nodes on the longest path from the root.
func (tree *Tree) Height() int {
	if tree.root == 0 {
		return 0
	}
	type frame struct {
		node  uint32
		depth int
	}
	alloc := tree.storage()
	height := 0
	stack := []frame{{tree.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = internal.Max(height, top.depth)
		if left := alloc[top.node].left; left != 0 {
			stack = append(stack, frame{left, top.depth + 1})
		}
		if right := alloc[top.node].right; right != 0 {
			stack = append(stack, frame{right, top.depth + 1})
		}
	}
	return height
}
