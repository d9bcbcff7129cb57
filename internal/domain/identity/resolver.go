package identity

// Resolver applies the disambiguation policy over an identity table. It never
// fails: unknown names resolve to the sentinel unknown identity and
// inconsistent homonym context falls back to the bare base name.
type Resolver struct {
	table Table
}

// NewResolver creates a resolver over table. The table is shared, not copied.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve turns a base name into its display identities. knownGrade and
// knownDepartment carry whatever disambiguation metadata the caller has;
// zero values mean the context is ambiguous.
//
// Absent name: one sentinel identity (grade 0, department 不明).
// Single record: one decorated identity.
// Homonym run with known grade+department: the record matching both, or the
// bare base name once when no record matches.
// Homonym run without context: every record as its own decorated identity,
// so one base name fans out into all possible people.
func (r *Resolver) Resolve(baseName string, knownGrade int, knownDepartment string) []DisplayIdentity {
	v, ok := r.table[baseName]
	if !ok || len(v.records) == 0 {
		return []DisplayIdentity{{DisplayName: baseName, Grade: 0, Department: UnknownDepartment}}
	}

	if !v.IsMany() {
		rec := v.records[0]
		return []DisplayIdentity{{DisplayName: Decorate(baseName, rec), Grade: rec.Grade, Department: rec.Department}}
	}

	if knownGrade > 0 && knownDepartment != "" {
		for _, rec := range v.records {
			if rec.Grade == knownGrade && rec.Department == knownDepartment {
				return []DisplayIdentity{{DisplayName: Decorate(baseName, rec), Grade: rec.Grade, Department: rec.Department}}
			}
		}
		// Inconsistent context: keep the bare name rather than guessing.
		return []DisplayIdentity{{DisplayName: baseName, Grade: knownGrade, Department: knownDepartment}}
	}

	out := make([]DisplayIdentity, 0, len(v.records))
	for _, rec := range v.records {
		out = append(out, DisplayIdentity{DisplayName: Decorate(baseName, rec), Grade: rec.Grade, Department: rec.Department})
	}
	return out
}

// ResolveAt resolves the record for the occurrence-th appearance (0-based) of
// baseName within one event's member list. The Nth occurrence consumes the
// Nth record of a homonym run, clamped to the last record when the run is
// exhausted. Deterministic per event, independent of the rest of the roster.
//
// This is a heuristic: nothing validates that sheet order matches the real
// people. It lives behind the resolver so better identity data can replace it.
func (r *Resolver) ResolveAt(baseName string, occurrence int) (Record, bool) {
	v, ok := r.table[baseName]
	if !ok || len(v.records) == 0 {
		return Record{Grade: 0, Department: UnknownDepartment}, false
	}
	i := occurrence
	if i < 0 {
		i = 0
	}
	if i >= len(v.records) {
		i = len(v.records) - 1
	}
	return v.records[i], true
}

// Occurrences counts repeated base names while walking one event's member
// list, feeding ResolveAt's positional policy.
type Occurrences struct {
	counts map[string]int
}

// NewOccurrences creates an empty occurrence counter for one event.
func NewOccurrences() *Occurrences {
	return &Occurrences{counts: make(map[string]int)}
}

// Next returns the 0-based occurrence index for name and advances the count.
func (o *Occurrences) Next(name string) int {
	n := o.counts[name]
	o.counts[name] = n + 1
	return n
}
