package rbtree

import "github.com/flier/tlist/pkg/arena"

// color is the Red-Black color of a node. Red-Black trees also need the
// color of a nil link; that is handled by Tree.colorOf treating arena.Nil
// as black without ever materializing a sentinel node.
type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == red {
		return "red"
	}

	return "black"
}

// node is one record in the arena-backed tree.
//
// leftCount is the sole positional augmentation: the number of live nodes
// reachable through left. No node stores its own rank, its own subtree
// size, or its right subtree's size — those are either derived on descent
// (rank) or never needed (right size).
type node[T any] struct {
	value T

	color color

	left, right, parent arena.Slot

	leftCount int
}

func newNode[T any](value T) node[T] {
	return node[T]{
		value:  value,
		color:  red,
		left:   arena.Nil,
		right:  arena.Nil,
		parent: arena.Nil,
	}
}
