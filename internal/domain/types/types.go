// Package types contains common types shared between the domain and the API.
package types

import "github.com/undokai/rostercheck/internal/domain/model"

// EventParticipation ties a participant to one team in one event. A value;
// two participations are the same when all three fields match.
type EventParticipation struct {
	EventName model.EventKind `json:"event_name"`
	Team      string          `json:"team"`
	Details   string          `json:"details"`
}

// Participant is the per-person view assembled from the raw entries. Built on
// demand, never persisted, never mutated after construction.
type Participant struct {
	Name       string               `json:"name"`
	School     string               `json:"school"`
	Events     []EventParticipation `json:"events"`
	Grade      int                  `json:"grade,omitempty"`
	Department string               `json:"department,omitempty"`
}

// MemberIdentity is one resolved roster line of an event: the name as written
// on the sheet plus the grade and department it resolved to.
type MemberIdentity struct {
	Name       string `json:"name"`
	Grade      int    `json:"grade"`
	Department string `json:"department"`
}
