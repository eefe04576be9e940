package rbtree

import (
	"github.com/flier/tlist/pkg/arena"
	"github.com/flier/tlist/pkg/opt"
)

// step records one edge walked while locating the node to remove: the
// node the edge starts at, and whether it continued left. It is the
// record deletion needs in order to decrement leftCount correctly once
// the physically removed node is known (see Remove).
type step struct {
	node arena.Slot
	left bool
}

// Remove removes and returns the value at position i, or None if i is
// outside [0, Len()). Every position > i shifts left by one.
func (t *Tree[T]) Remove(i int) opt.Option[T] {
	if i < 0 || i >= t.length {
		return opt.None[T]()
	}

	return opt.Some(t.removeAt(i))
}

// Pop removes and returns the last element, or None if the tree is empty.
func (t *Tree[T]) Pop() opt.Option[T] {
	return t.Remove(t.length - 1)
}

// removeAt performs the rank descent to position i (recording the path
// for the augmentation fix-up below), splices the target node out using
// the standard two-children-via-successor reduction, and rebalances.
//
// The path recorded during the descent to i already covers every ancestor
// whose left subtree contains the node physically removed: when the
// target has two children, that removal happens at its in-order successor
// y, which by construction lies inside the target's right subtree, so it
// shares every ancestor the target itself has above it. The descent from
// the target down to y (always: one right step, then all left steps) is
// appended to the same path before any decrementing happens.
func (t *Tree[T]) removeAt(i int) T {
	path := make([]step, 0, 2*approxLog2(t.length+1))

	remaining := i
	cur := t.root

	for {
		n := t.nodes.Get(cur)

		switch {
		case remaining < n.leftCount:
			path = append(path, step{cur, true})
			cur = n.left
		case remaining == n.leftCount:
			goto found
		default:
			remaining -= n.leftCount + 1
			path = append(path, step{cur, false})
			cur = n.right
		}
	}

found:
	z := cur
	removedValue := t.nodes.Get(z).value

	removed := z
	var x, xParent arena.Slot
	xWasLeft := false

	if t.leftOf(z) != arena.Nil && t.rightOf(z) != arena.Nil {
		path = append(path, step{z, false})

		y := t.rightOf(z)
		for t.leftOf(y) != arena.Nil {
			path = append(path, step{y, true})
			y = t.leftOf(y)
		}

		t.nodes.Get(z).value = t.nodes.Get(y).value
		removed = y

		x = t.rightOf(y)
		xParent = t.parentOf(y)
		xWasLeft = t.leftOf(xParent) == y
	} else {
		x = t.leftOf(z)
		if x == arena.Nil {
			x = t.rightOf(z)
		}

		xParent = t.parentOf(z)
		if xParent != arena.Nil {
			xWasLeft = t.leftOf(xParent) == z
		}
	}

	removedColor := t.colorOf(removed)

	switch {
	case xParent == arena.Nil:
		t.root = x
	case xWasLeft:
		t.nodes.Get(xParent).left = x
	default:
		t.nodes.Get(xParent).right = x
	}

	if x != arena.Nil {
		t.nodes.Get(x).parent = xParent
	}

	for _, s := range path {
		if s.left {
			t.nodes.Get(s.node).leftCount--
		}
	}

	t.nodes.Free(removed)
	t.length--
	t.version++

	if removedColor == black {
		t.deleteFixup(x, xParent)
	}

	return removedValue
}

// deleteFixup is the standard CLRS Red-Black deletion fix-up, parameterized
// on the (possibly nil) node x that replaced the removed black node and
// its parent, since a nil x has no node of its own to carry a parent link.
func (t *Tree[T]) deleteFixup(x, parent arena.Slot) {
	for x != t.root && t.colorOf(x) == black {
		if x == t.leftOf(parent) {
			w := t.rightOf(parent)

			if t.colorOf(w) == red {
				t.setColor(w, black)
				t.setColor(parent, red)
				t.rotateLeft(parent)
				w = t.rightOf(parent)
			}

			if t.colorOf(t.leftOf(w)) == black && t.colorOf(t.rightOf(w)) == black {
				t.setColor(w, red)
				x = parent
				parent = t.parentOf(parent)
			} else {
				if t.colorOf(t.rightOf(w)) == black {
					t.setColor(t.leftOf(w), black)
					t.setColor(w, red)
					t.rotateRight(w)
					w = t.rightOf(parent)
				}

				t.setColor(w, t.colorOf(parent))
				t.setColor(parent, black)
				t.setColor(t.rightOf(w), black)
				t.rotateLeft(parent)
				x = t.root
			}
		} else {
			w := t.leftOf(parent)

			if t.colorOf(w) == red {
				t.setColor(w, black)
				t.setColor(parent, red)
				t.rotateRight(parent)
				w = t.leftOf(parent)
			}

			if t.colorOf(t.rightOf(w)) == black && t.colorOf(t.leftOf(w)) == black {
				t.setColor(w, red)
				x = parent
				parent = t.parentOf(parent)
			} else {
				if t.colorOf(t.leftOf(w)) == black {
					t.setColor(t.rightOf(w), black)
					t.setColor(w, red)
					t.rotateLeft(w)
					w = t.leftOf(parent)
				}

				t.setColor(w, t.colorOf(parent))
				t.setColor(parent, black)
				t.setColor(t.leftOf(w), black)
				t.rotateRight(parent)
				x = t.root
			}
		}
	}

	t.setColor(x, black)
}

// approxLog2 returns a cheap over-estimate of log2(n), used only to size
// the path slice's initial capacity; an under-estimate would just cost one
// extra slice grow, never correctness.
func approxLog2(n int) int {
	log := 1
	for n > 1 {
		n >>= 1
		log++
	}

	return log
}
