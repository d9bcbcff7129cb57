package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/undokai/rostercheck/internal/adapters/http/api"
	service "github.com/undokai/rostercheck/internal/app"
	"github.com/undokai/rostercheck/internal/domain/checks"
	"github.com/undokai/rostercheck/internal/domain/roster"
	"github.com/undokai/rostercheck/internal/domain/schedule"
	"github.com/undokai/rostercheck/internal/domain/types"
	"github.com/undokai/rostercheck/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	svc := service.New()
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(svc.Stop)

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return mux
}

func get(mux *http.ServeMux, path string, query url.Values) *httptest.ResponseRecorder {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleSearch(t *testing.T) {
	Convey("Given the API over the embedded dataset", t, func() {
		mux := newTestMux(t)

		Convey("When no query is submitted", func() {
			rec := get(mux, "/search", nil)

			Convey("Then the response is 204 with no body", func() {
				So(rec.Code, ShouldEqual, http.StatusNoContent)
				So(rec.Body.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the query is whitespace only", func() {
			rec := get(mux, "/search", url.Values{"q": {"　 　"}})
			So(rec.Code, ShouldEqual, http.StatusNoContent)
		})

		Convey("When the query matches nobody", func() {
			rec := get(mux, "/search", url.Values{"q": {"存在しない名前"}})

			Convey("Then the response is 200 with an empty array", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var results []types.Participant
				So(json.Unmarshal(rec.Body.Bytes(), &results), ShouldBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When the query names a homonym", func() {
			rec := get(mux, "/search", url.Values{"q": {"藤井"}})
			So(rec.Code, ShouldEqual, http.StatusOK)

			var results []types.Participant
			So(json.Unmarshal(rec.Body.Bytes(), &results), ShouldBeNil)

			Convey("Then both candidate identities are served", func() {
				So(results, ShouldHaveLength, 2)
				So(results[0].Name, ShouldEqual, "藤井（NS・2年）")
				So(results[1].Name, ShouldEqual, "藤井（IB・2年）")
			})
		})

		Convey("When the method is not GET", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", nil))
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleGetReport(t *testing.T) {
	Convey("Given the API over the embedded dataset", t, func() {
		mux := newTestMux(t)

		Convey("When the report is requested", func() {
			rec := get(mux, "/report", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")

			var report checks.ValidationReport
			So(json.Unmarshal(rec.Body.Bytes(), &report), ShouldBeNil)

			Convey("Then the report covers every team entry", func() {
				So(report.Summary.TotalTeams, ShouldEqual, 6)
				So(report.Events, ShouldHaveLength, 6)
				So(report.School, ShouldEqual, "穴吹コンピュータカレッジ")
				So(report.ReportID, ShouldNotBeEmpty)
			})
		})
	})
}

func TestHandleEvents(t *testing.T) {
	Convey("Given the API over the embedded dataset", t, func() {
		mux := newTestMux(t)

		Convey("When the event list is requested", func() {
			rec := get(mux, "/events", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			var events []types.EventParticipation
			So(json.Unmarshal(rec.Body.Bytes(), &events), ShouldBeNil)
			So(events, ShouldHaveLength, 6)
		})

		Convey("When a roster is requested by its triple", func() {
			rec := get(mux, "/events/roster", url.Values{
				"event":   {"玉入れ"},
				"team":    {"Aチーム"},
				"details": {"エントリーシート"},
			})
			So(rec.Code, ShouldEqual, http.StatusOK)

			var resp struct {
				Event   types.EventParticipation `json:"event"`
				Members []types.MemberIdentity   `json:"members"`
				Groups  []roster.RosterGroup     `json:"groups"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)

			Convey("Then the flat and grouped listings are served", func() {
				So(resp.Event.Team, ShouldEqual, "Aチーム")
				So(resp.Members, ShouldHaveLength, 25)
				So(resp.Groups, ShouldNotBeEmpty)
			})
		})

		Convey("When the team parameter is missing", func() {
			rec := get(mux, "/events/roster", url.Values{"event": {"玉入れ"}})
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the triple matches no entry", func() {
			rec := get(mux, "/events/roster", url.Values{
				"event": {"玉入れ"},
				"team":  {"Zチーム"},
			})
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestHandleTimetable(t *testing.T) {
	Convey("Given the API", t, func() {
		mux := newTestMux(t)

		Convey("When the timetable is requested", func() {
			rec := get(mux, "/timetable", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			var items []schedule.Item
			So(json.Unmarshal(rec.Body.Bytes(), &items), ShouldBeNil)
			So(items, ShouldHaveLength, 13)
			So(items[0].Time, ShouldEqual, "08:30")
		})
	})
}

func TestHandleStats(t *testing.T) {
	Convey("Given the API", t, func() {
		mux := newTestMux(t)

		Convey("When stats are requested", func() {
			rec := get(mux, "/stats", nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			var stats map[string]interface{}
			So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["started"], ShouldBeTrue)
			So(stats["school"], ShouldEqual, "穴吹コンピュータカレッジ")
		})
	})
}

func TestHandleHealth(t *testing.T) {
	Convey("Given the API", t, func() {
		mux := newTestMux(t)

		Convey("When the health endpoint is scraped", func() {
			rec := get(mux, "/healthz", nil)

			Convey("Then it serves the metrics exposition", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "rostercheck_core")
			})
		})
	})
}
