// Package arena provides a dense, index-addressed allocation pool for
// homogeneous records.
//
// An Arena[T] hands out Slot identifiers instead of pointers. A Slot is
// stable for the lifetime between Alloc and Free: it never moves and is
// never invalidated by an unrelated allocation elsewhere in the pool. This
// is what lets a tree built on top of an Arena store "links" as plain
// integers rather than as *Node pointers, sidestepping the cyclic
// parent/child ownership that a pointer-based tree would otherwise run
// into, and keeping the hot traversal path dense and cache-friendly.
//
// Released slots are threaded onto a free list and reused on the next
// Alloc, so a long-running tree that inserts and removes in steady state
// settles into a fixed-size backing store instead of growing without
// bound.
package arena

import "github.com/flier/tlist/internal/debug"

// Slot identifies one record's position in an Arena's backing store.
//
// Slot is only meaningful in the context of the Arena that issued it.
// Comparing slots from two different arenas, or using a slot after it has
// been freed, is a contract violation (see Arena.Get).
type Slot uint32

// Nil is the reserved Slot value denoting the absence of a link: no child,
// no parent, no root.
const Nil Slot = 1<<32 - 1

// Arena is a dense pool of records of type T, addressed by Slot.
//
// The zero Arena is empty and ready to use. An Arena is not safe for
// concurrent use; callers needing concurrent access must synchronize
// externally.
type Arena[T any] struct {
	records []T
	live    []bool // parallel to records; O(1) liveness check for Get/Free.
	free    []Slot // LIFO stack of released slots awaiting reuse.
	count   int
}

// WithCapacity returns an Arena pre-sized to hold n records without
// triggering a slice grow on the first n allocations.
func WithCapacity[T any](n int) *Arena[T] {
	a := &Arena[T]{}
	a.Reserve(n)
	return a
}

// Reserve ensures the arena can hold at least n live records without
// growing its backing store again.
func (a *Arena[T]) Reserve(n int) {
	if cap(a.records) >= n {
		return
	}

	records := make([]T, len(a.records), n)
	copy(records, a.records)
	a.records = records

	live := make([]bool, len(a.live), n)
	copy(live, a.live)
	a.live = live
}

// Len returns the number of live records currently held by the arena.
func (a *Arena[T]) Len() int { return a.count }

// Cap returns the number of slots reserved by the arena, live or free.
func (a *Arena[T]) Cap() int { return cap(a.records) }

// Alloc stores record and returns the Slot it now occupies. If the free
// list holds a previously released slot, that slot is reused (LIFO);
// otherwise the backing store grows by one element.
func (a *Arena[T]) Alloc(record T) Slot {
	a.count++

	if n := len(a.free); n > 0 {
		s := a.free[n-1]
		a.free = a.free[:n-1]
		a.records[s] = record
		a.live[s] = true
		debug.Log(nil, "arena.Alloc", "reused slot %d", s)
		return s
	}

	a.records = append(a.records, record)
	a.live = append(a.live, true)
	s := Slot(len(a.records) - 1)
	debug.Log(nil, "arena.Alloc", "grew to slot %d", s)
	return s
}

// Free releases slot, making it eligible for reuse by a later Alloc. The
// stored record is zeroed so it cannot keep otherwise-unreachable values
// (e.g. pointers held by T) alive past the release.
//
// Freeing a slot that is not currently live is a contract violation.
func (a *Arena[T]) Free(slot Slot) {
	debug.Assert(a.isLive(slot), "arena.Free: slot %d is not live", slot)

	var zero T
	a.records[slot] = zero
	a.live[slot] = false
	a.free = append(a.free, slot)
	a.count--

	debug.Log(nil, "arena.Free", "released slot %d", slot)
}

// Get returns a pointer to the live record at slot.
//
// Accessing a freed or out-of-range slot is a contract violation: in a
// debug build this panics via debug.Assert, in a release build it is
// undefined behavior (most likely a stale or zeroed record read, since
// slot indices are never reused for bounds-checking purposes once a slice
// grows to cover them).
func (a *Arena[T]) Get(slot Slot) *T {
	debug.Assert(a.isLive(slot), "arena.Get: slot %d is not live", slot)

	return &a.records[slot]
}

// isLive reports whether slot currently refers to an allocated record.
func (a *Arena[T]) isLive(slot Slot) bool {
	return slot != Nil && int(slot) < len(a.live) && a.live[slot]
}
