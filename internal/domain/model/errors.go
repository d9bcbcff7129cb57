package model

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidEntry = errors.New("invalid entry")
)

// ValidateEntries rejects structurally malformed entries before any report or
// index is built. Everything past this gate is a finding, not a failure: a
// report guarantees one check per entry and cannot uphold that over entries
// with no event name or no members.
func ValidateEntries(entries []RawEntry) error {
	for i, e := range entries {
		switch {
		case e.EventName == "":
			return fmt.Errorf("entry %d: missing event name: %w", i, ErrInvalidEntry)
		case e.Team == "":
			return fmt.Errorf("entry %d (%s): missing team: %w", i, e.EventName, ErrInvalidEntry)
		case len(e.Members) == 0:
			return fmt.Errorf("entry %d (%s/%s): no members: %w", i, e.EventName, e.Team, ErrInvalidEntry)
		}
		for j, m := range e.Members {
			if m.Name == "" {
				return fmt.Errorf("entry %d (%s/%s): member %d has no name: %w", i, e.EventName, e.Team, j, ErrInvalidEntry)
			}
		}
	}
	return nil
}
