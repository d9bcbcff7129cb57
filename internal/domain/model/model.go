// Package model contains domain models passed between layers.
package model

// EventKind names one of the five competition categories of the day.
type EventKind string

// The closed set of competition categories.
const (
	Tamaire    EventKind = "玉入れ"
	BallCarry  EventKind = "Let'sボール運び"
	LeggedRace EventKind = "20人21脚"
	TugOfWar   EventKind = "綱引き"
	Relay      EventKind = "学校対抗リレー"
)

// EventKinds lists all categories in schedule order.
func EventKinds() []EventKind {
	return []EventKind{Tamaire, BallCarry, LeggedRace, TugOfWar, Relay}
}

// IsKnown reports whether k is one of the five fixed categories.
func (k EventKind) IsKnown() bool {
	switch k {
	case Tamaire, BallCarry, LeggedRace, TugOfWar, Relay:
		return true
	}
	return false
}

// Member is one roster slot on an entry sheet. Most slots carry only a name;
// slots for homonyms additionally carry grade and department so the person
// can be told apart from their namesakes.
type Member struct {
	Name       string `json:"name"`
	Grade      int    `json:"grade,omitempty"`
	Department string `json:"department,omitempty"`
}

// HasIdentity reports whether the slot carries explicit disambiguation
// metadata alongside the name.
func (m Member) HasIdentity() bool {
	return m.Grade > 0 && m.Department != ""
}

// RawEntry is one team's roster for one event, as transcribed from the entry
// sheets. Member order is display order only; repeated names are allowed and
// surface as findings, never as rejections.
type RawEntry struct {
	EventName EventKind `json:"event_name"`
	Team      string    `json:"team"`
	Details   string    `json:"details"`
	Members   []Member  `json:"members"`
}

// Rule captures the structural constraints for one event kind. Zero values
// mean "no constraint of that kind".
type Rule struct {
	TeamSize        int      `json:"team_size,omitempty"`
	GenderSeparated bool     `json:"gender_separated,omitempty"`
	Genders         []string `json:"genders,omitempty"`
}

// RuleTable maps event kinds to their structural rules. Events without an
// entry are unconstrained.
type RuleTable map[EventKind]Rule
