//go:build go1.23

// Package xiter provides small, allocation-free combinators over the standard
// library's range-over-func iterators (iter.Seq / iter.Seq2).
//
// The tlist package exposes its traversal as an iter.Seq[T]; these combinators
// let callers project or pair that traversal without collecting it into a
// slice first.
package xiter

import (
	"iter"
)

// Map returns an iterator that calls f on every element of x, yielding its
// result in the same order. Map is lazy: f is only invoked as the returned
// sequence is consumed, so ranging over a Map of a tlist iterator performs a
// single pass over the tree with no intermediate allocation.
func Map[T, O any](x iter.Seq[T], f func(T) O) iter.Seq[O] {
	return func(yield func(O) bool) {
		for v := range x {
			if !yield(f(v)) {
				break
			}
		}
	}
}
