package tlist

import (
	"iter"

	"github.com/flier/tlist/pkg/opt"
	"github.com/flier/tlist/pkg/rbtree"
	"github.com/flier/tlist/pkg/xiter"
)

// TList is an indexable sequence of values of type T.
//
// A TList is created with New, WithCapacity or FromSlice; the zero TList
// is not usable, because its backing tree has no empty root marker. A
// TList is not safe for concurrent use; callers needing concurrent access
// must synchronize externally.
type TList[T any] struct {
	tree rbtree.Tree[T]
}

// New returns an empty TList.
func New[T any]() *TList[T] {
	return &TList[T]{tree: *rbtree.New[T]()}
}

// WithCapacity returns an empty TList whose backing storage is pre-sized
// to hold at least n elements without growing.
func WithCapacity[T any](n int) *TList[T] {
	l := &TList[T]{}
	l.tree = *rbtree.WithCapacity[T](n)

	return l
}

// FromSlice builds a TList holding a copy of values, in order.
func FromSlice[T any](values []T) *TList[T] {
	l := &TList[T]{}
	l.tree = *rbtree.FromSlice(values)

	return l
}

// Len returns the number of elements in the list.
func (l *TList[T]) Len() int { return l.tree.Len() }

// Cap returns the number of element slots reserved by the list's backing
// storage, live or free.
func (l *TList[T]) Cap() int { return l.tree.Cap() }

// Get returns the value at position i, or None if i is outside
// [0, Len()).
func (l *TList[T]) Get(i int) opt.Option[T] { return l.tree.Get(i) }

// GetMut returns a pointer to the value at position i for in-place
// mutation, or nil if i is outside [0, Len()). The pointer is only valid
// until the next structural mutation of the list.
func (l *TList[T]) GetMut(i int) *T { return l.tree.GetMut(i) }

// Insert places value at position i, which afterwards holds it; every
// existing position >= i shifts right by one. i must be in [0, Len()];
// i == Len() behaves like Push.
//
// Insert panics with *rbtree.OutOfRangeError if i is out of range.
// Callers that want out-of-range i to silently append instead should use
// InsertOrPush.
func (l *TList[T]) Insert(value T, i int) { l.tree.Insert(value, i) }

// Push appends value as the new last element.
func (l *TList[T]) Push(value T) { l.tree.Push(value) }

// InsertOrPush inserts value at i when 0 <= i <= Len(), and otherwise
// (including a negative i) appends it.
func (l *TList[T]) InsertOrPush(value T, i int) { l.tree.InsertOrPush(value, i) }

// Remove removes and returns the value at position i, or None if i is
// outside [0, Len()). Every position > i shifts left by one.
func (l *TList[T]) Remove(i int) opt.Option[T] { return l.tree.Remove(i) }

// Pop removes and returns the last element, or None if the list is
// empty.
func (l *TList[T]) Pop() opt.Option[T] { return l.tree.Pop() }

// Iter returns a borrowing, in-order iterator over the list.
func (l *TList[T]) Iter() *rbtree.Iter[T] { return l.tree.Iter() }

// IntoIter returns a consuming, in-order iterator over the list: driving
// it removes elements from the list as they are visited.
func (l *TList[T]) IntoIter() *rbtree.IntoIter[T] { return l.tree.IntoIter() }

// Values returns an in-order sequence over the list's elements, for use
// in a range loop.
func (l *TList[T]) Values() iter.Seq[T] { return l.tree.Values() }

// Enumerate returns an in-order sequence pairing each element with its
// position, without the repeated O(log n) rank descents a loop of
// l.Get(i) would pay.
func (l *TList[T]) Enumerate() iter.Seq2[int, T] { return xiter.Enumerate(l.Values()) }

// Map returns an in-order sequence of f applied to each element of l,
// lazily: f only runs as the returned sequence is consumed.
func Map[T, O any](l *TList[T], f func(T) O) iter.Seq[O] { return xiter.Map(l.Values(), f) }

// Clone returns a deep, independent copy of the list.
func (l *TList[T]) Clone() *TList[T] {
	return &TList[T]{tree: *l.tree.Clone()}
}

// Check verifies every invariant the list's backing tree is supposed to
// maintain. It is O(n) and intended for tests, not production call
// sites.
func (l *TList[T]) Check() error { return l.tree.Check() }

// String renders a compact, Go-syntax-like view of the list's elements,
// in order: TList[3]{1, 2, 3}.
func (l *TList[T]) String() string {
	s := l.tree.String()
	return "TList" + s[len("Tree"):]
}

func (l *TList[T]) GoString() string {
	s := l.tree.GoString()
	return "tlist.TList" + s[len("rbtree.Tree"):]
}
