// Package roster builds the per-participant index and per-event roster views
// from the raw team entries.
package roster

import (
	"github.com/undokai/rostercheck/internal/domain/identity"
	"github.com/undokai/rostercheck/internal/domain/model"
	"github.com/undokai/rostercheck/internal/domain/types"
)

// Index is the immutable name -> participant view over one set of entries.
// It is built explicitly and passed by reference; there is no process-wide
// singleton. Rebuild it when the entries change.
type Index struct {
	school string
	byName map[string]*types.Participant
	names  []string // first-seen order
}

// BuildIndex aggregates entries into an index. Every participation occurrence
// is stored verbatim, duplicates included; display layers dedupe by the
// composite event/team/details key when they need to.
func BuildIndex(school string, entries []model.RawEntry) *Index {
	x := &Index{
		school: school,
		byName: make(map[string]*types.Participant),
	}
	for _, e := range entries {
		participation := types.EventParticipation{
			EventName: e.EventName,
			Team:      e.Team,
			Details:   e.Details,
		}
		for _, m := range e.Members {
			p, ok := x.byName[m.Name]
			if !ok {
				p = &types.Participant{
					Name:   m.Name,
					School: school,
				}
				if m.HasIdentity() {
					p.Grade = m.Grade
					p.Department = m.Department
				}
				x.byName[m.Name] = p
				x.names = append(x.names, m.Name)
			}
			p.Events = append(p.Events, participation)
		}
	}
	return x
}

// Lookup returns a copy of the participant view for name.
func (x *Index) Lookup(name string) (types.Participant, bool) {
	p, ok := x.byName[name]
	if !ok {
		return types.Participant{}, false
	}
	return copyParticipant(p), true
}

// Names returns all known base names in first-seen order.
func (x *Index) Names() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// Len returns the number of distinct participants in the index.
func (x *Index) Len() int {
	return len(x.names)
}

// School returns the school the index was built for.
func (x *Index) School() string {
	return x.school
}

func copyParticipant(p *types.Participant) types.Participant {
	cp := *p
	cp.Events = make([]types.EventParticipation, len(p.Events))
	copy(cp.Events, p.Events)
	return cp
}

// UniqueEvents returns the distinct event/team/details triples across
// entries, input order preserved. This backs the default event browser.
func UniqueEvents(entries []model.RawEntry) []types.EventParticipation {
	seen := make(map[types.EventParticipation]struct{}, len(entries))
	out := make([]types.EventParticipation, 0, len(entries))
	for _, e := range entries {
		ep := types.EventParticipation{EventName: e.EventName, Team: e.Team, Details: e.Details}
		if _, ok := seen[ep]; ok {
			continue
		}
		seen[ep] = struct{}{}
		out = append(out, ep)
	}
	return out
}

// EventRoster resolves one entry's member list into identities, in sheet
// order. Members carrying explicit grade/department keep them; the rest go
// through the resolver's positional homonym policy.
func EventRoster(entry model.RawEntry, resolver *identity.Resolver) []types.MemberIdentity {
	occ := identity.NewOccurrences()
	out := make([]types.MemberIdentity, 0, len(entry.Members))
	for _, m := range entry.Members {
		n := occ.Next(m.Name)
		if m.HasIdentity() {
			out = append(out, types.MemberIdentity{Name: m.Name, Grade: m.Grade, Department: m.Department})
			continue
		}
		rec, _ := resolver.ResolveAt(m.Name, n)
		out = append(out, types.MemberIdentity{Name: m.Name, Grade: rec.Grade, Department: rec.Department})
	}
	return out
}
