package tlist_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/tlist/pkg/tlist"
)

func TestTList_BasicOperations(t *testing.T) {
	Convey("Given a new TList", t, func() {
		list := tlist.New[int]()

		Convey("When empty", func() {
			So(list.Len(), ShouldEqual, 0)
			So(list.Get(0).IsNone(), ShouldBeTrue)
			So(list.Pop().IsNone(), ShouldBeTrue)
			So(list.Check(), ShouldBeNil)
		})

		Convey("When pushing and inserting", func() {
			list.Push(1)
			list.Push(3)
			list.Insert(2, 1)

			Convey("Then iteration yields the elements in positional order", func() {
				var got []int
				for v := range list.Values() {
					got = append(got, v)
				}

				So(got, ShouldResemble, []int{1, 2, 3})
			})

			Convey("Then Remove returns the removed value and shrinks the list", func() {
				v, ok := list.Remove(1).Get()
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 2)
				So(list.Len(), ShouldEqual, 2)
			})

			Convey("Then it satisfies every invariant", func() {
				So(list.Check(), ShouldBeNil)
			})
		})
	})
}

func TestTList_FromSliceAndClone(t *testing.T) {
	Convey("Given a TList built FromSlice", t, func() {
		list := tlist.FromSlice([]string{"x", "y", "z"})

		Convey("Then Len and positional reads match the slice", func() {
			So(list.Len(), ShouldEqual, 3)

			y, _ := list.Get(1).Get()
			So(y, ShouldEqual, "y")
		})

		Convey("When cloned and mutated independently", func() {
			clone := list.Clone()
			clone.Pop()
			list.Push("w")

			Convey("Then the two lists diverge", func() {
				So(clone.Len(), ShouldEqual, 2)
				So(list.Len(), ShouldEqual, 4)
			})
		})
	})
}

func TestTList_EnumerateAndMap(t *testing.T) {
	Convey("Given a TList with elements", t, func() {
		list := tlist.FromSlice([]string{"a", "b", "c"})

		Convey("Then Enumerate pairs each element with its position", func() {
			got := map[int]string{}
			for i, v := range list.Enumerate() {
				got[i] = v
			}

			So(got, ShouldResemble, map[int]string{0: "a", 1: "b", 2: "c"})
		})

		Convey("Then Map lazily projects every element", func() {
			var got []string
			for v := range tlist.Map(list, func(s string) string { return s + s }) {
				got = append(got, v)
			}

			So(got, ShouldResemble, []string{"aa", "bb", "cc"})
		})
	})
}

func TestTList_IterAndIntoIter(t *testing.T) {
	Convey("Given a TList with elements", t, func() {
		list := tlist.FromSlice([]int{1, 2, 3})

		Convey("Then Iter borrows without mutating", func() {
			it := list.Iter()

			var got []int
			for {
				v, ok := it.Next().Get()
				if !ok {
					break
				}
				got = append(got, v)
			}

			So(got, ShouldResemble, []int{1, 2, 3})
			So(list.Len(), ShouldEqual, 3)
		})

		Convey("Then IntoIter drains the list as it is consumed", func() {
			for range list.IntoIter().Values() {
			}

			So(list.Len(), ShouldEqual, 0)
		})
	})
}

func TestTList_String(t *testing.T) {
	Convey("Given a small TList", t, func() {
		list := tlist.FromSlice([]int{1, 2})

		Convey("Then String renders its elements in order", func() {
			So(list.String(), ShouldEqual, "TList[2]{1, 2}")
		})

		Convey("Then GoString renders the list's shape", func() {
			s := list.GoString()

			So(s, ShouldContainSubstring, "tlist.TList{")
			So(s, ShouldContainSubstring, "len: 2")
		})
	})
}
