package rbtree

import "fmt"

// OutOfRangeError is the value Insert panics with when its position
// argument falls outside [0, Len()].
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("rbtree: index %d out of range for length %d", e.Index, e.Len)
}

// ErrIteratorInvalidated is panicked by an Iter that detects the tree was
// mutated since the iterator was created; IntoIter does no such check. Mutating a tree during
// iteration is a contract violation; this is the checked-mode response to
// it rather than silently returning a corrupted traversal.
type ErrIteratorInvalidated struct{}

func (ErrIteratorInvalidated) Error() string {
	return "rbtree: tree was mutated during iteration"
}
