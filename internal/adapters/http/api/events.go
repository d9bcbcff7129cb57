// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/undokai/rostercheck/internal/domain/model"
	"github.com/undokai/rostercheck/internal/domain/roster"
	"github.com/undokai/rostercheck/internal/domain/types"
)

// EventsDependencies defines the interface for event browsing.
type EventsDependencies interface {
	Events(ctx context.Context) ([]types.EventParticipation, error)
	EventRoster(ctx context.Context, eventName model.EventKind, team, details string) ([]types.MemberIdentity, []roster.RosterGroup, error)
}

// EventsHandler handles event list and roster requests.
type EventsHandler struct {
	deps EventsDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventsDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandleListEvents handles GET /events requests.
func (h *EventsHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	events, err := h.deps.Events(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// rosterResponse carries both the flat resolved member list and the grouped
// department/grade listing for one event entry.
type rosterResponse struct {
	Event   types.EventParticipation `json:"event"`
	Members []types.MemberIdentity   `json:"members"`
	Groups  []roster.RosterGroup     `json:"groups"`
}

// HandleGetRoster handles GET /events/roster?event=&team=&details= requests.
// The triple identifies one raw entry.
func (h *EventsHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	eventName := model.EventKind(q.Get("event"))
	team := q.Get("team")
	if eventName == "" || team == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	details := q.Get("details")

	members, groups, err := h.deps.EventRoster(r.Context(), eventName, team, details)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, rosterResponse{
		Event:   types.EventParticipation{EventName: eventName, Team: team, Details: details},
		Members: members,
		Groups:  groups,
	})
}
