// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/undokai/rostercheck/internal/domain/checks"
	"github.com/undokai/rostercheck/internal/domain/model"
	"github.com/undokai/rostercheck/internal/domain/roster"
	"github.com/undokai/rostercheck/internal/domain/schedule"
	"github.com/undokai/rostercheck/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Report builds a fresh validation report over the loaded dataset.
	Report(ctx context.Context) (*checks.ValidationReport, error)

	// Search resolves a query into participant views. submitted is false
	// when the query normalizes to nothing.
	Search(ctx context.Context, query string) (results []types.Participant, submitted bool)

	// Events lists the distinct event/team/details triples.
	Events(ctx context.Context) ([]types.EventParticipation, error)

	// EventRoster resolves one entry's member list into identities.
	EventRoster(ctx context.Context, eventName model.EventKind, team, details string) ([]types.MemberIdentity, []roster.RosterGroup, error)

	// Timetable returns the fixed day schedule.
	Timetable(ctx context.Context) []schedule.Item
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	reportHandler    *ReportHandler
	searchHandler    *SearchHandler
	eventsHandler    *EventsHandler
	timetableHandler *TimetableHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		reportHandler:    NewReportHandler(deps),
		searchHandler:    NewSearchHandler(deps),
		eventsHandler:    NewEventsHandler(deps),
		timetableHandler: NewTimetableHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/report", MetricsMiddleware(s.reportHandler.HandleGetReport, "report"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandleListEvents, "events"))
	mux.HandleFunc("/events/roster", MetricsMiddleware(s.eventsHandler.HandleGetRoster, "events_roster"))
	mux.HandleFunc("/timetable", MetricsMiddleware(s.timetableHandler.HandleGetTimetable, "timetable"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
