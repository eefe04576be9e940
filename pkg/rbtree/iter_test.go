package rbtree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/tlist/pkg/rbtree"
)

func TestIter(t *testing.T) {
	Convey("Given a Tree with elements and a borrowing iterator", t, func() {
		tree := rbtree.FromSlice([]int{10, 20, 30})
		it := tree.Iter()

		Convey("Then Next yields every element in order then None", func() {
			v, ok := it.Next().Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 10)

			v, ok = it.Next().Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 20)

			v, ok = it.Next().Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 30)

			So(it.Next().IsNone(), ShouldBeTrue)
		})

		Convey("Then Values ranges over the same sequence", func() {
			var got []int
			for v := range tree.Iter().Values() {
				got = append(got, v)
			}

			So(got, ShouldResemble, []int{10, 20, 30})
		})

		Convey("Then mutating the tree after construction invalidates it", func() {
			tree.Push(40)

			So(func() { it.Next() }, ShouldPanicWith, rbtree.ErrIteratorInvalidated{})
		})

		Convey("Then the tree itself is untouched by iteration", func() {
			for range it.Values() {
			}

			So(tree.Len(), ShouldEqual, 3)
		})
	})
}

func TestIntoIter(t *testing.T) {
	Convey("Given a Tree with elements and a consuming iterator", t, func() {
		tree := rbtree.FromSlice([]int{1, 2, 3})
		it := tree.IntoIter()

		Convey("Then each Next both returns and removes the next element", func() {
			v, ok := it.Next().Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 1)
			So(tree.Len(), ShouldEqual, 2)

			v, ok = it.Next().Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 2)
			So(tree.Len(), ShouldEqual, 1)
		})

		Convey("Then draining it fully empties the tree", func() {
			for range it.Values() {
			}

			So(tree.Len(), ShouldEqual, 0)
			So(tree.Check(), ShouldBeNil)
			So(tree.Get(0).IsNone(), ShouldBeTrue)
		})

		Convey("Then abandoning it partway leaves the remainder in the tree", func() {
			it.Next()

			So(tree.Len(), ShouldEqual, 2)

			v, _ := tree.Get(0).Get()
			So(v, ShouldEqual, 2)
		})
	})
}
