// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/undokai/rostercheck/internal/domain/schedule"
)

// TimetableDependencies defines the interface for schedule lookups.
type TimetableDependencies interface {
	Timetable(ctx context.Context) []schedule.Item
}

// TimetableHandler handles day schedule requests.
type TimetableHandler struct {
	deps TimetableDependencies
}

// NewTimetableHandler creates a new timetable handler.
func NewTimetableHandler(deps TimetableDependencies) *TimetableHandler {
	return &TimetableHandler{deps: deps}
}

// HandleGetTimetable handles GET /timetable requests.
func (h *TimetableHandler) HandleGetTimetable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Timetable(r.Context()))
}
