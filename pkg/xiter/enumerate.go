//go:build go1.23

package xiter

import "iter"

// Enumerate pairs every element of x with its ordinal position, starting at
// zero. Ranging over Enumerate(t.Values()) recovers the same (position,
// value) pairs as a positional t.Get(i) loop, without the repeated O(log n)
// rank descents.
func Enumerate[T any](x iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var i int
		for v := range x {
			if !yield(i, v) {
				break
			}

			i += 1
		}
	}
}
