// Package tlist provides TList, an indexable sequence container backed by
// an order-statistic Red-Black tree.
//
// # Overview
//
// A TList behaves like a slice for the purposes of positional access
// (Get, Insert, Remove, Push, Pop, iteration) but is backed by
// github.com/flier/tlist/pkg/rbtree instead of a contiguous array. That
// trade gives every positional operation O(log n) time, including insert
// and remove at an arbitrary position, at the cost of O(log n) (rather
// than O(1) amortized) access and no contiguous backing memory to hand
// out as a slice.
//
// # When to use TList
//
//   - Frequent insert/remove at arbitrary positions, not just the ends
//   - Positional access patterns where O(log n) is an acceptable trade
//     for avoiding the O(n) shift cost []T pays for a mid-sequence splice
//
// # When not to use TList
//
//   - Append-only or back-only workloads: a plain []T's amortized O(1)
//     Push beats TList's O(log n) Push
//   - Code needing a contiguous []T to hand to an API boundary
//   - Concurrent access from multiple goroutines without external
//     synchronization — TList, like the rbtree.Tree it wraps, is not
//     safe for concurrent use
//
// # Example
//
//	list := tlist.New[string]()
//	list.Push("b")
//	list.Insert("a", 0)
//	list.Insert("c", 2)
//
//	for v := range list.Values() {
//		fmt.Println(v)
//	}
package tlist
