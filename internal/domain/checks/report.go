// Package checks runs the consistency checks over the raw team entries and
// assembles the validation report.
package checks

import (
	"time"

	"github.com/undokai/rostercheck/internal/domain/model"
)

// Status is the per-check verdict. Severity is ordered error > warn > pass
// and a check only ever moves up that ladder.
type Status string

const (
	StatusPass  Status = "pass"
	StatusWarn  Status = "warn"
	StatusError Status = "error"
)

func (s Status) rank() int {
	switch s {
	case StatusError:
		return 2
	case StatusWarn:
		return 1
	default:
		return 0
	}
}

// Escalate returns the worse of s and to. It never downgrades.
func (s Status) Escalate(to Status) Status {
	if to.rank() > s.rank() {
		return to
	}
	return s
}

// EventCheck is the finding for one raw entry. Exactly one is produced per
// entry, in input order.
type EventCheck struct {
	EventName        model.EventKind `json:"event_name"`
	Team             string          `json:"team"`
	Details          string          `json:"details"`
	ExpectedTeamSize int             `json:"expected_team_size,omitempty"`
	ActualTeamSize   int             `json:"actual_team_size"`
	Status           Status          `json:"status"`
	Notes            []string        `json:"notes,omitempty"`
}

// TeamDuplicate records names that appear more than once within one entry.
type TeamDuplicate struct {
	EventName model.EventKind `json:"event_name"`
	Team      string          `json:"team"`
	Names     []string        `json:"names"`
}

// MultiTeamEntry records a name registered in two or more teams of one event.
type MultiTeamEntry struct {
	EventName model.EventKind `json:"event_name"`
	Name      string          `json:"name"`
	Teams     []string        `json:"teams"`
}

// PeopleChecks covers person-level findings across all entries.
type PeopleChecks struct {
	// MissingDetails lists names on the sheets with no identity record,
	// sorted ascending. UnusedDetails lists identity records no sheet
	// references, sorted ascending.
	MissingDetails       []string         `json:"missing_details"`
	UnusedDetails        []string         `json:"unused_details"`
	DuplicatesInSameTeam []TeamDuplicate  `json:"duplicates_in_same_team"`
	MultiTeamSameEvent   []MultiTeamEntry `json:"multi_team_same_event"`
}

// RequirementGap is an unmet structural team requirement for one event kind.
type RequirementGap struct {
	EventName   model.EventKind `json:"event_name"`
	Requirement string          `json:"requirement"`
	Missing     []string        `json:"missing"`
}

// Summary aggregates check verdicts. Warnings includes one increment per
// requirement gap on top of the warn-status checks, matching long-standing
// report behavior; RequirementGaps carries the gap count separately so
// consumers can recompute the sum either way.
type Summary struct {
	TotalTeams      int `json:"total_teams"`
	Passed          int `json:"passed"`
	Warnings        int `json:"warnings"`
	Errors          int `json:"errors"`
	RequirementGaps int `json:"requirement_gaps"`
}

// ValidationReport is the full consistency report over one dataset. All
// fields are plain values; the report serializes to JSON as-is.
type ValidationReport struct {
	ReportID             string           `json:"report_id"`
	GeneratedAt          time.Time        `json:"generated_at"`
	School               string           `json:"school"`
	Summary              Summary          `json:"summary"`
	Events               []EventCheck     `json:"events"`
	MissingRequiredTeams []RequirementGap `json:"missing_required_teams,omitempty"`
	People               PeopleChecks     `json:"people"`
}
