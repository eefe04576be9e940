package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/tlist/pkg/arena"
)

func TestArena(t *testing.T) {
	Convey("Given an empty arena of ints", t, func() {
		a := &Arena[int]{}

		So(a.Len(), ShouldEqual, 0)
		So(a.Cap(), ShouldEqual, 0)

		Convey("When allocating a value", func() {
			s := a.Alloc(42)

			Convey("Then it is reachable at the returned slot", func() {
				So(*a.Get(s), ShouldEqual, 42)
				So(a.Len(), ShouldEqual, 1)
			})

			Convey("And freeing it drops the live count", func() {
				a.Free(s)

				So(a.Len(), ShouldEqual, 0)
			})

			Convey("And a later alloc reuses the freed slot", func() {
				a.Free(s)

				s2 := a.Alloc(7)

				So(s2, ShouldEqual, s)
				So(*a.Get(s2), ShouldEqual, 7)
				So(a.Len(), ShouldEqual, 1)
			})
		})

		Convey("When reserving capacity up front", func() {
			a.Reserve(16)

			So(a.Cap(), ShouldBeGreaterThanOrEqualTo, 16)

			Convey("Then allocating within that capacity keeps Cap stable", func() {
				cap0 := a.Cap()
				for i := 0; i < 16; i++ {
					a.Alloc(i)
				}

				So(a.Cap(), ShouldEqual, cap0)
			})
		})
	})

	Convey("Given an arena with many freed slots interleaved with live ones", t, func() {
		a := &Arena[string]{}

		var slots []Slot
		for i := 0; i < 8; i++ {
			slots = append(slots, a.Alloc(string(rune('a'+i))))
		}

		for i := 0; i < len(slots); i += 2 {
			a.Free(slots[i])
		}

		Convey("Then the surviving odd slots still read back correctly", func() {
			for i := 1; i < len(slots); i += 2 {
				So(*a.Get(slots[i]), ShouldEqual, string(rune('a'+i)))
			}

			So(a.Len(), ShouldEqual, 4)
		})
	})
}
