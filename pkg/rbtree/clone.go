package rbtree

import "github.com/flier/tlist/pkg/arena"

// Clone returns a deep, independent copy of t: the returned Tree shares no
// arena slots with t, and mutating one afterwards never affects the other.
//
// Clone walks t's shape directly rather than replaying Push for every
// element, so it preserves t's exact node colors and structure instead of
// rebuilding a shape that merely happens to hold the same values in the
// same order.
func (t *Tree[T]) Clone() *Tree[T] {
	c := &Tree[T]{root: arena.Nil}
	c.nodes.Reserve(t.nodes.Len())

	c.root = t.cloneSubtree(t.root, arena.Nil, c)
	c.length = t.length

	return c
}

// cloneSubtree copies the subtree rooted at s (a slot in t) into dst,
// attaching the copy to parent, and returns the new slot.
func (t *Tree[T]) cloneSubtree(s, parent arena.Slot, dst *Tree[T]) arena.Slot {
	if s == arena.Nil {
		return arena.Nil
	}

	n := t.nodes.Get(s)

	cs := dst.nodes.Alloc(node[T]{
		value:     n.value,
		color:     n.color,
		left:      arena.Nil,
		right:     arena.Nil,
		parent:    parent,
		leftCount: n.leftCount,
	})

	cn := dst.nodes.Get(cs)
	cn.left = t.cloneSubtree(n.left, cs, dst)
	cn.right = t.cloneSubtree(n.right, cs, dst)

	return cs
}
