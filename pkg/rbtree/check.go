package rbtree

import (
	"fmt"

	"github.com/flier/tlist/pkg/arena"
)

// Check verifies every Red-Black and order-statistic invariant the tree is
// supposed to maintain: root is black, no red node has a red child, every
// root-to-nil path carries the same black height, leftCount matches the
// actual live size of each node's left subtree, parent/child links agree
// in both directions, and the tree's reported Len matches the number of
// nodes actually reachable from the root.
//
// Check is O(n) and intended for tests and debug-mode assertions, not for
// production call sites.
func (t *Tree[T]) Check() error {
	if t.colorOf(t.root) == red {
		return fmt.Errorf("rbtree: root is red")
	}

	count, _, err := t.checkNode(t.root, arena.Nil)
	if err != nil {
		return err
	}

	if count != t.length {
		return fmt.Errorf("rbtree: Len() reports %d but %d nodes are reachable from root", t.length, count)
	}

	return nil
}

// checkNode recursively validates the subtree rooted at s, returning the
// number of live nodes in it and its black height (the count of black
// nodes on any path from s down to nil, counting s itself when s is
// black; a nil subtree has black height 0).
func (t *Tree[T]) checkNode(s, wantParent arena.Slot) (count, blackHeight int, err error) {
	if s == arena.Nil {
		return 0, 0, nil
	}

	n := t.nodes.Get(s)

	if n.parent != wantParent {
		return 0, 0, fmt.Errorf("rbtree: node %d has parent %d, want %d", s, n.parent, wantParent)
	}

	if n.color == red {
		if t.colorOf(n.left) == red || t.colorOf(n.right) == red {
			return 0, 0, fmt.Errorf("rbtree: red node %d has a red child", s)
		}
	}

	leftCount, leftHeight, err := t.checkNode(n.left, s)
	if err != nil {
		return 0, 0, err
	}

	if leftCount != n.leftCount {
		return 0, 0, fmt.Errorf("rbtree: node %d has leftCount %d, actual left subtree size is %d", s, n.leftCount, leftCount)
	}

	rightCount, rightHeight, err := t.checkNode(n.right, s)
	if err != nil {
		return 0, 0, err
	}

	if leftHeight != rightHeight {
		return 0, 0, fmt.Errorf("rbtree: node %d has unequal black heights on its left (%d) and right (%d)", s, leftHeight, rightHeight)
	}

	height := leftHeight
	if n.color == black {
		height++
	}

	return leftCount + rightCount + 1, height, nil
}
