package rbtree

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/flier/tlist/internal/debug"
	"github.com/flier/tlist/pkg/arena"
)

// Dump renders the tree's actual shape — colors, left_count, and slot ids,
// not just its in-order values — as an indented tree diagram. It exists for
// debugging rebalancing bugs and for tests that want to eyeball a tree
// rather than assert on it; String and GoString are the stable,
// contract-bearing formats.
func (t *Tree[T]) Dump() string {
	root := treeprint.New()

	if t.root == arena.Nil {
		root.SetValue("(empty)")
	} else {
		t.dumpNode(root, t.root)
	}

	return root.String()
}

func (t *Tree[T]) dumpNode(p treeprint.Tree, s arena.Slot) {
	n := t.nodes.Get(s)
	label := fmt.Sprint(debug.Dict(n.color, "value", n.value, "leftCount", n.leftCount, "slot", s))

	if n.left == arena.Nil && n.right == arena.Nil {
		p.AddNode(label)
		return
	}

	branch := p.AddBranch(label)

	if n.left != arena.Nil {
		t.dumpNode(branch, n.left)
	} else {
		branch.AddNode("(nil)")
	}

	if n.right != arena.Nil {
		t.dumpNode(branch, n.right)
	} else {
		branch.AddNode("(nil)")
	}
}
