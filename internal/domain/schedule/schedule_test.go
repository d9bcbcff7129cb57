package schedule_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/undokai/rostercheck/internal/domain/model"
	"github.com/undokai/rostercheck/internal/domain/schedule"
)

func TestTimetable(t *testing.T) {
	Convey("Given the day timetable", t, func() {
		items := schedule.Timetable()

		Convey("Then rows come in chronological order", func() {
			So(items, ShouldHaveLength, 13)
			for i := 1; i < len(items); i++ {
				So(items[i].Time, ShouldBeGreaterThan, items[i-1].Time)
			}
		})

		Convey("Then every competition kind has exactly one slot", func() {
			slots := make(map[model.EventKind]int)
			for _, it := range items {
				if it.Type == schedule.Competition {
					slots[it.EventName]++
				}
			}
			So(slots, ShouldHaveLength, 5)
			for _, k := range model.EventKinds() {
				So(slots[k], ShouldEqual, 1)
			}
		})

		Convey("Then ceremony rows carry no event kind", func() {
			for _, it := range items {
				if it.Type == schedule.Other {
					So(it.EventName, ShouldBeEmpty)
				}
			}
		})
	})
}

func TestStartTime(t *testing.T) {
	Convey("Given the competition slots", t, func() {
		Convey("When a scheduled kind is asked for", func() {
			start, ok := schedule.StartTime(model.Tamaire)
			So(ok, ShouldBeTrue)
			So(start, ShouldEqual, "10:10")
		})

		Convey("When an unknown kind is asked for", func() {
			_, ok := schedule.StartTime("謎種目")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEventOrder(t *testing.T) {
	Convey("Given the running order", t, func() {
		So(schedule.EventOrder(model.Tamaire), ShouldEqual, 0)
		So(schedule.EventOrder(model.Relay), ShouldEqual, 4)
		So(schedule.EventOrder("謎種目"), ShouldEqual, -1)
	})
}
