package checks

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/undokai/rostercheck/internal/domain/dedupe"
	"github.com/undokai/rostercheck/internal/domain/identity"
	"github.com/undokai/rostercheck/internal/domain/model"
)

// Finding note texts. The multi-team marker doubles as the idempotency guard:
// a check carries at most one multi-team note.
const (
	requirementGenderTeams = "男女別チーム"
	requirementOneTeamEach = "男子/女子 各1チーム"
	multiTeamNoteMarker    = "同一種目で複数チーム"
	genderLabelMale        = "男子"
	genderLabelFemale      = "女子"
)

// Builder runs the validation checks against a fixed rule and identity table.
// Safe for repeated Build calls; each call produces a fresh report.
type Builder struct {
	rules  model.RuleTable
	table  identity.Table
	school string
	now    func() time.Time
	newID  func() string
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithSchool sets the school name stamped on reports.
func WithSchool(school string) Option {
	return func(b *Builder) {
		if school != "" {
			b.school = school
		}
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator overrides the report ID source.
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// NewBuilder creates a Builder over the given rule and identity tables. Both
// are shared, not copied, and are never mutated.
func NewBuilder(rules model.RuleTable, table identity.Table, opts ...Option) *Builder {
	b := &Builder{
		rules: rules,
		table: table,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs every check over entries and assembles the report. Apart from
// the timestamp and report ID the output is fully determined by the inputs.
// Malformed entries fail fast; everything detected past that gate is a
// finding on the report, never an error.
func (b *Builder) Build(entries []model.RawEntry) (*ValidationReport, error) {
	if err := model.ValidateEntries(entries); err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	// Group entries by event kind, preserving first-seen kind order so the
	// cross-entry passes stay deterministic.
	grouped := make(map[model.EventKind][]model.RawEntry)
	var kindOrder []model.EventKind
	for _, e := range entries {
		if _, ok := grouped[e.EventName]; !ok {
			kindOrder = append(kindOrder, e.EventName)
		}
		grouped[e.EventName] = append(grouped[e.EventName], e)
	}

	eventChecks := make([]EventCheck, 0, len(entries))
	allNames := dedupe.NewSet(len(entries))
	var teamDups []TeamDuplicate
	var gaps []RequirementGap
	gapRecorded := make(map[model.EventKind]bool)

	for _, e := range entries {
		c := EventCheck{
			EventName:      e.EventName,
			Team:           e.Team,
			Details:        e.Details,
			ActualTeamSize: len(e.Members),
			Status:         StatusPass,
		}

		rule, hasRule := b.rules[e.EventName]

		if hasRule && rule.TeamSize > 0 {
			c.ExpectedTeamSize = rule.TeamSize
			if len(e.Members) != rule.TeamSize {
				c.Status = c.Status.Escalate(StatusError)
				c.Notes = append(c.Notes, fmt.Sprintf("人数が規定(%d)と一致しません", rule.TeamSize))
			}
		}

		// Names seen twice within this one entry, recorded once per name.
		seen := make(map[string]bool, len(e.Members))
		var dupNames []string
		for _, m := range e.Members {
			allNames.SeenAndRecord(m.Name)
			if seen[m.Name] && !slices.Contains(dupNames, m.Name) {
				dupNames = append(dupNames, m.Name)
			}
			seen[m.Name] = true
		}
		if len(dupNames) > 0 {
			teamDups = append(teamDups, TeamDuplicate{EventName: e.EventName, Team: e.Team, Names: dupNames})
			c.Status = c.Status.Escalate(StatusWarn)
			c.Notes = append(c.Notes, "同一チーム内で重複: "+strings.Join(dupNames, ", "))
		}

		// Gender-team requirements are entry-driven: a kind with no entries
		// at all cannot surface a gap. Each kind records at most one gap even
		// though the loop revisits it per entry.
		if e.EventName == model.TugOfWar && hasRule && rule.GenderSeparated && !gapRecorded[e.EventName] {
			missing := missingTeamLabels(grouped[e.EventName], []string{genderLabelMale, genderLabelFemale})
			if len(missing) > 0 {
				gaps = append(gaps, RequirementGap{EventName: e.EventName, Requirement: requirementGenderTeams, Missing: missing})
				gapRecorded[e.EventName] = true
			}
		}
		if e.EventName == model.Relay && hasRule && len(rule.Genders) > 0 && !gapRecorded[e.EventName] {
			missing := missingTeamLabels(grouped[e.EventName], rule.Genders)
			if len(missing) > 0 {
				gaps = append(gaps, RequirementGap{EventName: e.EventName, Requirement: requirementOneTeamEach, Missing: missing})
				gapRecorded[e.EventName] = true
			}
		}

		eventChecks = append(eventChecks, c)
	}

	multi := b.multiTeamPass(kindOrder, grouped, eventChecks)

	missingDetails := make([]string, 0)
	for _, n := range allNames.Keys() {
		if _, ok := b.table[n]; !ok {
			missingDetails = append(missingDetails, n)
		}
	}
	sort.Strings(missingDetails)

	unusedDetails := make([]string, 0)
	for n := range b.table {
		if !allNames.Has(n) {
			unusedDetails = append(unusedDetails, n)
		}
	}
	sort.Strings(unusedDetails)

	var passed, warnings, errors int
	for _, c := range eventChecks {
		switch c.Status {
		case StatusPass:
			passed++
		case StatusWarn:
			warnings++
		case StatusError:
			errors++
		}
	}
	// Requirement gaps add to the warning count on top of the warn-status
	// checks above; the gap count stays visible in RequirementGaps.
	warnings += len(gaps)

	return &ValidationReport{
		ReportID:    b.newID(),
		GeneratedAt: b.now().UTC(),
		School:      b.school,
		Summary: Summary{
			TotalTeams:      len(eventChecks),
			Passed:          passed,
			Warnings:        warnings,
			Errors:          errors,
			RequirementGaps: len(gaps),
		},
		Events:               eventChecks,
		MissingRequiredTeams: gaps,
		People: PeopleChecks{
			MissingDetails:       missingDetails,
			UnusedDetails:        unusedDetails,
			DuplicatesInSameTeam: teamDups,
			MultiTeamSameEvent:   multi,
		},
	}, nil
}

// multiTeamPass detects names registered in more than one team of the same
// event and escalates every check of the affected event/team pairs to at
// least warn. Checks are mutated in place.
func (b *Builder) multiTeamPass(kindOrder []model.EventKind, grouped map[model.EventKind][]model.RawEntry, eventChecks []EventCheck) []MultiTeamEntry {
	var multi []MultiTeamEntry
	for _, kind := range kindOrder {
		nameTeams := make(map[string][]string)
		var nameOrder []string
		for _, t := range grouped[kind] {
			for _, m := range t.Members {
				if _, ok := nameTeams[m.Name]; !ok {
					nameOrder = append(nameOrder, m.Name)
				}
				if !slices.Contains(nameTeams[m.Name], t.Team) {
					nameTeams[m.Name] = append(nameTeams[m.Name], t.Team)
				}
			}
		}
		for _, name := range nameOrder {
			teams := nameTeams[name]
			if len(teams) < 2 {
				continue
			}
			multi = append(multi, MultiTeamEntry{EventName: kind, Name: name, Teams: teams})
			for i := range eventChecks {
				c := &eventChecks[i]
				if c.EventName != kind || !slices.Contains(teams, c.Team) {
					continue
				}
				c.Status = c.Status.Escalate(StatusWarn)
				if !hasNoteMarked(c.Notes, multiTeamNoteMarker) {
					c.Notes = append(c.Notes, fmt.Sprintf("同一種目で複数チームに登録: %s（%s）", name, strings.Join(teams, " / ")))
				}
			}
		}
	}
	return multi
}

// missingTeamLabels returns the required labels with no matching team among
// the kind's entries, in required order.
func missingTeamLabels(entries []model.RawEntry, required []string) []string {
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Team] = true
	}
	var missing []string
	for _, label := range required {
		if !present[label] {
			missing = append(missing, label)
		}
	}
	return missing
}

func hasNoteMarked(notes []string, marker string) bool {
	for _, n := range notes {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}
