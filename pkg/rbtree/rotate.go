package rbtree

import "github.com/flier/tlist/pkg/arena"

// rotateLeft performs the standard Red-Black left rotation around x, with
// its right child y taking x's place. The only augmentation arithmetic a
// rotation needs is here: y's new left_count is x's unchanged left_count
// plus x itself plus y's old left_count (the subtree that used to hang off
// y's left now hangs off x's right, but x.leftCount describes x's left
// child, which did not move, so it stays put).
func (t *Tree[T]) rotateLeft(x arena.Slot) {
	xn := t.nodes.Get(x)
	y := xn.right
	yn := t.nodes.Get(y)

	xn.right = yn.left
	if yn.left != arena.Nil {
		t.nodes.Get(yn.left).parent = x
	}

	yn.parent = xn.parent

	switch {
	case xn.parent == arena.Nil:
		t.root = y
	case t.nodes.Get(xn.parent).left == x:
		t.nodes.Get(xn.parent).left = y
	default:
		t.nodes.Get(xn.parent).right = y
	}

	yn.left = x
	xn.parent = y

	yn.leftCount = xn.leftCount + 1 + yn.leftCount
}

// rotateRight is the mirror image of rotateLeft. x's new left_count is its
// old left_count minus y (itself plus y's own left subtree), since x's new
// left child is what used to be y's right subtree.
func (t *Tree[T]) rotateRight(x arena.Slot) {
	xn := t.nodes.Get(x)
	y := xn.left
	yn := t.nodes.Get(y)

	xn.left = yn.right
	if yn.right != arena.Nil {
		t.nodes.Get(yn.right).parent = x
	}

	yn.parent = xn.parent

	switch {
	case xn.parent == arena.Nil:
		t.root = y
	case t.nodes.Get(xn.parent).left == x:
		t.nodes.Get(xn.parent).left = y
	default:
		t.nodes.Get(xn.parent).right = y
	}

	yn.right = x
	xn.parent = y

	xn.leftCount = xn.leftCount - yn.leftCount - 1
}
