package rbtree

import (
	"fmt"

	"github.com/flier/tlist/internal/debug"
)

// String renders a compact, Go-syntax-like view of the tree's elements, in
// order: Tree[3]{1, 2, 3}. It never touches node color or shape; use
// Dump for that.
func (t *Tree[T]) String() string {
	return fmt.Sprint(debug.Formatter(func(s fmt.State) {
		_, _ = fmt.Fprintf(s, "Tree[%d]{", t.length)

		first := true
		for v := range t.Values() {
			if !first {
				_, _ = fmt.Fprint(s, ", ")
			}
			first = false
			_, _ = fmt.Fprintf(s, "%v", v)
		}

		_, _ = fmt.Fprint(s, "}")
	}))
}

// GoString renders the tree's node count and capacity, for use by %#v and
// by debug logging that cares about shape rather than contents.
func (t *Tree[T]) GoString() string {
	return fmt.Sprint(debug.Dict("rbtree.Tree", "len", t.length, "cap", t.nodes.Cap()))
}
