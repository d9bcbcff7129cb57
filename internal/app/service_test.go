package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/undokai/rostercheck/internal/app"
	"github.com/undokai/rostercheck/internal/domain/model"
	"github.com/undokai/rostercheck/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func startedService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	s := service.New(opts...)
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Stop)
	return s
}

func TestStart(t *testing.T) {
	Convey("Given a service over the embedded dataset", t, func() {
		s := startedService(t)

		Convey("Then the stats reflect the loaded snapshot", func() {
			stats := s.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["school"], ShouldEqual, "穴吹コンピュータカレッジ")
			So(stats["entries"], ShouldEqual, 6)
			So(stats["identities"], ShouldEqual, 102)
		})

		Convey("When Start is called again", func() {
			So(s.Start(context.Background()), ShouldBeNil)
		})
	})

	Convey("Given a service pointed at a missing dataset file", t, func() {
		s := service.New(service.WithDatasetPath("/nonexistent/roster.yaml"))

		Convey("Then Start fails and operations report not started", func() {
			So(s.Start(context.Background()), ShouldNotBeNil)
			_, err := s.Report(context.Background())
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, submitted := s.Search(context.Background(), "山中")
			So(submitted, ShouldBeFalse)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		s := startedService(t)

		Convey("When the query is empty or whitespace", func() {
			results, submitted := s.Search(ctx, "")
			So(submitted, ShouldBeFalse)
			So(results, ShouldBeNil)

			_, submitted = s.Search(ctx, " 　 ")
			So(submitted, ShouldBeFalse)
		})

		Convey("When the query matches nobody", func() {
			results, submitted := s.Search(ctx, "存在しない名前")
			So(submitted, ShouldBeTrue)
			So(results, ShouldBeEmpty)
		})

		Convey("When the query names a participant with a single record", func() {
			results, submitted := s.Search(ctx, "山中")
			So(submitted, ShouldBeTrue)
			So(results, ShouldHaveLength, 1)
			So(results[0].Name, ShouldEqual, "山中（IS・AI・NS・1年）")
			So(results[0].School, ShouldEqual, "穴吹コンピュータカレッジ")
			So(results[0].Events, ShouldHaveLength, 2)
		})

		Convey("When the query names a homonym with no sheet context", func() {
			results, submitted := s.Search(ctx, "藤井")
			So(submitted, ShouldBeTrue)

			Convey("Then every possible person fans out", func() {
				So(results, ShouldHaveLength, 2)
				So(results[0].Name, ShouldEqual, "藤井（NS・2年）")
				So(results[1].Name, ShouldEqual, "藤井（IB・2年）")
			})

			Convey("Then both views share the sheet participations", func() {
				So(results[0].Events, ShouldResemble, results[1].Events)
			})
		})

		Convey("When the query names someone without an identity record", func() {
			results, submitted := s.Search(ctx, "福家")
			So(submitted, ShouldBeTrue)

			Convey("Then matches include the sentinel identity", func() {
				found := false
				for _, p := range results {
					if p.Name == "福家" {
						found = true
						So(p.Grade, ShouldEqual, 0)
						So(p.Department, ShouldEqual, "不明")
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When a token matches as a substring", func() {
			results, submitted := s.Search(ctx, "藤")
			So(submitted, ShouldBeTrue)
			So(len(results), ShouldBeGreaterThan, 2)
		})

		Convey("When several tokens are given", func() {
			results, submitted := s.Search(ctx, "山中 井戸")
			So(submitted, ShouldBeTrue)

			names := make([]string, len(results))
			for i, p := range results {
				names[i] = p.Name
			}
			So(names, ShouldContain, "山中（IS・AI・NS・1年）")
			So(names, ShouldContain, "井戸（IS・AI・2年）")
		})

		Convey("When a half-width katakana query is used", func() {
			results, _ := s.Search(ctx, "ﾍﾟｱ")
			So(results, ShouldHaveLength, 1)
			So(results[0].Name, ShouldEqual, "ペア（IS・AI・NS・1年）")
		})
	})

	Convey("Given a service with a tight result cap", t, func() {
		ctx := context.Background()
		s := startedService(t, service.WithMaxSearchResults(2))

		Convey("When a broad query runs", func() {
			results, submitted := s.Search(ctx, "藤")
			So(submitted, ShouldBeTrue)
			So(results, ShouldHaveLength, 2)
		})
	})
}

func TestReport(t *testing.T) {
	Convey("Given a started service", t, func() {
		s := startedService(t)

		Convey("When the report builds", func() {
			report, err := s.Report(context.Background())
			So(err, ShouldBeNil)

			Convey("Then it covers the whole dataset", func() {
				So(report.School, ShouldEqual, "穴吹コンピュータカレッジ")
				So(report.Summary.TotalTeams, ShouldEqual, 6)
				So(report.ReportID, ShouldNotBeEmpty)
			})

			Convey("Then a second build is a fresh report", func() {
				again, err := s.Report(context.Background())
				So(err, ShouldBeNil)
				So(again.ReportID, ShouldNotEqual, report.ReportID)
			})
		})
	})
}

func TestEvents(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		s := startedService(t)

		Convey("When the distinct events list", func() {
			events, err := s.Events(ctx)
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 6)
			So(events[0].EventName, ShouldEqual, model.LeggedRace)
			So(events[5].EventName, ShouldEqual, model.TugOfWar)
		})

		Convey("When one entry's roster resolves", func() {
			members, groups, err := s.EventRoster(ctx, model.Tamaire, "Aチーム", "エントリーシート")
			So(err, ShouldBeNil)
			So(members, ShouldHaveLength, 25)
			So(groups, ShouldNotBeEmpty)

			Convey("Then the homonym occurrences split positionally", func() {
				var depts []string
				for _, m := range members {
					if m.Name == "藤井" {
						depts = append(depts, m.Department)
					}
				}
				So(depts, ShouldResemble, []string{"NS", "IB"})
			})
		})

		Convey("When the triple matches no entry", func() {
			_, _, err := s.EventRoster(ctx, model.Tamaire, "Zチーム", "")
			So(errors.Is(err, service.ErrEventNotFound), ShouldBeTrue)
		})
	})
}

func TestTimetable(t *testing.T) {
	Convey("Given a service", t, func() {
		s := service.New()

		Convey("Then the fixed timetable is served in order", func() {
			items := s.Timetable(context.Background())
			So(items, ShouldHaveLength, 13)
			So(items[0].Time, ShouldEqual, "08:30")
			So(items[len(items)-1].Time, ShouldEqual, "16:00")
		})
	})
}
