package rbtree

import "github.com/flier/tlist/pkg/arena"

// Insert places value at position i, which afterwards holds it; every
// existing position >= i shifts right by one. i must be in [0, Len()];
// i == Len() behaves like Push.
//
// Insert panics with *OutOfRangeError if i is out of range. Callers that
// want out-of-range i to silently append instead should use
// InsertOrPush.
func (t *Tree[T]) Insert(value T, i int) {
	if i < 0 || i > t.length {
		panic(&OutOfRangeError{Index: i, Len: t.length})
	}

	t.insertAt(value, i)
}

// Push appends value as the new last element. Push never rejects its
// input: there is no position it could be out of range for.
func (t *Tree[T]) Push(value T) {
	t.insertAt(value, t.length)
}

// InsertOrPush inserts value at i when 0 <= i <= Len(), and otherwise
// (including a negative i) appends it, guaranteeing the append fallback
// that Insert itself does not.
func (t *Tree[T]) InsertOrPush(value T, i int) {
	if i < 0 || i > t.length {
		i = t.length
	}

	t.insertAt(value, i)
}

// insertAt is the shared rank-descent insertion described in the package
// doc: descend toward position i, incrementing leftCount on every node
// where the descent goes left (since the new node, not yet attached, will
// land in that subtree), attach a new red node at the nil reached, then
// rebalance.
func (t *Tree[T]) insertAt(value T, i int) {
	parent := arena.Nil
	cur := t.root
	wentLeft := false

	for cur != arena.Nil {
		n := t.nodes.Get(cur)
		parent = cur

		if i <= n.leftCount {
			n.leftCount++
			wentLeft = true
			cur = n.left
		} else {
			i -= n.leftCount + 1
			wentLeft = false
			cur = n.right
		}
	}

	s := t.nodes.Alloc(newNode(value))
	sn := t.nodes.Get(s)
	sn.parent = parent

	switch {
	case parent == arena.Nil:
		t.root = s
	case wentLeft:
		t.nodes.Get(parent).left = s
	default:
		t.nodes.Get(parent).right = s
	}

	t.length++
	t.version++

	t.insertFixup(s)
}

// insertFixup is the standard CLRS Red-Black insertion fix-up: while z's
// parent is red, either recolor through a red uncle and move the problem
// two levels up, or rotate once or twice through a black uncle and
// terminate. Rotations carry their own augmentation fix (see rotate.go);
// no additional leftCount bookkeeping is needed here.
func (t *Tree[T]) insertFixup(z arena.Slot) {
	for t.colorOf(t.parentOf(z)) == red {
		p := t.parentOf(z)
		g := t.parentOf(p)

		if p == t.leftOf(g) {
			u := t.rightOf(g)

			if t.colorOf(u) == red {
				t.setColor(p, black)
				t.setColor(u, black)
				t.setColor(g, red)
				z = g

				continue
			}

			if z == t.rightOf(p) {
				z = p
				t.rotateLeft(z)
				p = t.parentOf(z)
				g = t.parentOf(p)
			}

			t.setColor(p, black)
			t.setColor(g, red)
			t.rotateRight(g)
		} else {
			u := t.leftOf(g)

			if t.colorOf(u) == red {
				t.setColor(p, black)
				t.setColor(u, black)
				t.setColor(g, red)
				z = g

				continue
			}

			if z == t.leftOf(p) {
				z = p
				t.rotateRight(z)
				p = t.parentOf(z)
				g = t.parentOf(p)
			}

			t.setColor(p, black)
			t.setColor(g, red)
			t.rotateLeft(g)
		}
	}

	t.setColor(t.root, black)
}
