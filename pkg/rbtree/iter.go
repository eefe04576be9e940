//go:build go1.23

package rbtree

import (
	"iter"

	"github.com/flier/tlist/pkg/arena"
	"github.com/flier/tlist/pkg/opt"
)

// Iter is a borrowing, in-order iterator over a Tree: stepping it reads
// elements without removing them, and the Tree is unchanged once the
// iterator is dropped.
//
// An Iter observes the version the Tree had when it was constructed. Any
// structural mutation of the Tree afterwards (Insert, Push, Remove, Pop)
// invalidates it; Next panics with ErrIteratorInvalidated if it detects
// this rather than silently returning a traversal that no longer matches
// the tree's shape.
type Iter[T any] struct {
	tree    *Tree[T]
	version uint64
	stack   []arena.Slot
}

// Iter returns a borrowing iterator positioned before the first element.
func (t *Tree[T]) Iter() *Iter[T] {
	it := &Iter[T]{tree: t, version: t.version}
	it.pushLeftSpine(t.root)

	return it
}

// pushLeftSpine pushes s and every left descendant of s onto the stack, so
// the top of the stack is always the next element in in-order sequence.
func (it *Iter[T]) pushLeftSpine(s arena.Slot) {
	for s != arena.Nil {
		it.stack = append(it.stack, s)
		s = it.tree.leftOf(s)
	}
}

// Next advances the iterator and returns the next value in order, or None
// once every element has been visited.
func (it *Iter[T]) Next() opt.Option[T] {
	debugCheckVersion(it.tree, it.version)

	n := len(it.stack)
	if n == 0 {
		return opt.None[T]()
	}

	s := it.stack[n-1]
	it.stack = it.stack[:n-1]

	value := it.tree.nodes.Get(s).value
	it.pushLeftSpine(it.tree.rightOf(s))

	return opt.Some(value)
}

// Values adapts the iterator to a Go range-over-func sequence:
//
//	for v := range t.Iter().Values() {
//		...
//	}
func (it *Iter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Values returns an in-order sequence over t's elements. It is shorthand
// for t.Iter().Values() for callers that only need a single pass.
func (t *Tree[T]) Values() iter.Seq[T] {
	return t.Iter().Values()
}

// debugCheckVersion panics with ErrIteratorInvalidated if tree has been
// structurally mutated since want was captured.
func debugCheckVersion[T any](tree *Tree[T], want uint64) {
	if tree.version != want {
		panic(ErrIteratorInvalidated{})
	}
}

// IntoIter is a consuming, in-order iterator: each Next frees the arena
// slot it returns, so the tree shrinks as the iterator is driven and is
// empty once the iterator is exhausted. Because the iterator's own steps
// are the only mutation happening, there is no version to invalidate
// against — IntoIter never panics.
type IntoIter[T any] struct {
	tree  *Tree[T]
	stack []arena.Slot
}

// IntoIter returns a consuming iterator over t. Driving it to completion
// (or partway and abandoning it) leaves t with only the un-visited
// elements still in it; draining it fully leaves t empty.
func (t *Tree[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{tree: t}
	it.pushLeftSpine(t.root)

	return it
}

func (it *IntoIter[T]) pushLeftSpine(s arena.Slot) {
	for s != arena.Nil {
		it.stack = append(it.stack, s)
		s = it.tree.leftOf(s)
	}
}

// Next removes and returns the next value in order, or None once the
// tree has been fully drained by this iterator.
func (it *IntoIter[T]) Next() opt.Option[T] {
	n := len(it.stack)
	if n == 0 {
		return opt.None[T]()
	}

	s := it.stack[n-1]
	it.stack = it.stack[:n-1]

	right := it.tree.rightOf(s)
	value := it.tree.nodes.Get(s).value

	it.tree.nodes.Free(s)
	it.tree.length--
	it.tree.version++

	if it.tree.length == 0 {
		it.tree.root = arena.Nil
	}

	it.pushLeftSpine(right)

	return opt.Some(value)
}

// Values adapts the consuming iterator to a range-over-func sequence.
// Breaking out of the range loop early leaves the un-visited elements in
// the backing tree.
func (it *IntoIter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
