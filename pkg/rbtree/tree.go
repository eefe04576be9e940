// Package rbtree implements an order-statistic Red-Black tree: a balanced
// binary search tree with no key or comparator, whose shape is driven
// entirely by caller-supplied positions. It is the indexable-sequence
// engine behind the tlist package.
//
// Every node carries one piece of augmentation, leftCount: the number of
// live nodes in its left subtree. No node stores its own rank. A query or
// mutation at position i descends from the root accumulating left-subtree
// sizes until the running remainder lands on the target node — the "rank
// descent" implemented by Tree.locate. This keeps positional get/insert/remove at
// O(log n), the same bound a keyed Red-Black tree gets for ordered lookup,
// without the O(n) re-keying a plain sorted array or a position-keyed BST
// would need on every mid-sequence mutation.
//
// Nodes live in a pkg/arena.Arena and are addressed by arena.Slot rather
// than by pointer, so the cyclic parent/child graph a Red-Black tree needs
// never requires a language-level cyclic reference.
package rbtree

import (
	"github.com/flier/tlist/pkg/arena"
	"github.com/flier/tlist/pkg/opt"
)

// Tree is an order-statistic Red-Black tree over values of type T.
//
// A Tree is created with New, WithCapacity or FromSlice; the zero Tree is
// not usable, because its root field is slot 0 rather than arena.Nil. A
// Tree is not safe for concurrent use: exclusive access is required for
// every mutating operation, and shared read access is only safe while no
// mutator is active (see the doc of arena.Arena for the same rule at the
// storage layer).
type Tree[T any] struct {
	nodes   arena.Arena[node[T]]
	root    arena.Slot
	length  int
	version uint64 // bumped by every structural mutation; see iter.go.
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: arena.Nil}
}

// WithCapacity returns an empty Tree whose backing arena is pre-sized to
// hold at least n nodes without growing.
func WithCapacity[T any](n int) *Tree[T] {
	t := &Tree[T]{root: arena.Nil}
	t.nodes.Reserve(n)

	return t
}

// FromSlice builds a Tree whose in-order traversal equals values, by
// inserting each element at the end in turn. This is the "trivial wrapper
// over repeated insert" construction the order-statistic core requires
// nothing more clever than: each Push is O(log n), so the whole build is
// O(n log n).
func FromSlice[T any](values []T) *Tree[T] {
	t := WithCapacity[T](len(values))
	for _, v := range values {
		t.Push(v)
	}

	return t
}

// Len returns the number of elements currently held by the tree.
func (t *Tree[T]) Len() int { return t.length }

// Cap returns the number of node slots reserved by the tree's backing
// arena, live or free.
func (t *Tree[T]) Cap() int { return t.nodes.Cap() }

// Get returns the value at position i, or None if i is outside [0, Len()).
func (t *Tree[T]) Get(i int) opt.Option[T] {
	if i < 0 || i >= t.length {
		return opt.None[T]()
	}

	s, ok := t.locate(i)
	if !ok {
		return opt.None[T]()
	}

	return opt.Some(t.nodes.Get(s).value)
}

// GetMut returns a pointer to the value at position i for in-place
// mutation, or nil if i is outside [0, Len()). The pointer is only valid
// until the next structural mutation of the tree.
func (t *Tree[T]) GetMut(i int) *T {
	if i < 0 || i >= t.length {
		return nil
	}

	s, ok := t.locate(i)
	if !ok {
		return nil
	}

	return &t.nodes.Get(s).value
}

// locate performs the rank descent described in the package doc, returning
// the slot holding position i and true, or (arena.Nil, false) if no such
// slot exists (i is out of range for the current shape — callers that have
// already bounds-checked i against Len() will never see this).
func (t *Tree[T]) locate(i int) (arena.Slot, bool) {
	remaining := i
	cur := t.root

	for cur != arena.Nil {
		n := t.nodes.Get(cur)

		switch {
		case remaining < n.leftCount:
			cur = n.left
		case remaining == n.leftCount:
			return cur, true
		default:
			remaining -= n.leftCount + 1
			cur = n.right
		}
	}

	return arena.Nil, false
}

func (t *Tree[T]) colorOf(s arena.Slot) color {
	if s == arena.Nil {
		return black
	}

	return t.nodes.Get(s).color
}

func (t *Tree[T]) setColor(s arena.Slot, c color) {
	if s != arena.Nil {
		t.nodes.Get(s).color = c
	}
}

func (t *Tree[T]) leftOf(s arena.Slot) arena.Slot {
	if s == arena.Nil {
		return arena.Nil
	}

	return t.nodes.Get(s).left
}

func (t *Tree[T]) rightOf(s arena.Slot) arena.Slot {
	if s == arena.Nil {
		return arena.Nil
	}

	return t.nodes.Get(s).right
}

func (t *Tree[T]) parentOf(s arena.Slot) arena.Slot {
	if s == arena.Nil {
		return arena.Nil
	}

	return t.nodes.Get(s).parent
}
