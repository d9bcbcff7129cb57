// Package identity resolves base names from the entry sheets into
// display-ready identities, disambiguating homonyms by grade and department.
package identity

import "fmt"

// UnknownDepartment is the sentinel department for names that have no record
// in the identity table. Paired with grade 0 it marks "we know the name was
// on a sheet, nothing else".
const UnknownDepartment = "不明"

// Record describes one real person behind a base name.
type Record struct {
	Grade      int    `json:"grade"`
	Department string `json:"department"`
}

// Value is the tagged identity variant stored per base name: exactly one
// person, or an ordered run of homonyms sharing the name. The order of a
// homonym run mirrors the entry sheets and drives positional resolution.
type Value struct {
	records []Record
}

// Single wraps one record.
func Single(r Record) Value {
	return Value{records: []Record{r}}
}

// Many wraps an ordered homonym run. Two or more records means the roster
// has that many distinct people sharing the base name.
func Many(rs ...Record) Value {
	cp := make([]Record, len(rs))
	copy(cp, rs)
	return Value{records: cp}
}

// Records returns the underlying records in roster order.
func (v Value) Records() []Record {
	return v.records
}

// IsMany reports whether the value is an unresolved homonym run.
func (v Value) IsMany() bool {
	return len(v.records) > 1
}

// Table maps base names to identity values. Read-only once built.
type Table map[string]Value

// Names returns all base names known to the table, in map order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	return names
}

// DisplayIdentity is a resolved, human-readable identity for one context.
type DisplayIdentity struct {
	DisplayName string `json:"display_name"`
	Grade       int    `json:"grade"`
	Department  string `json:"department"`
}

// Decorate renders the fixed display form for a known record, e.g.
// 山田（IS・2年）. Full-width parentheses, middle dot, grade suffix.
func Decorate(baseName string, r Record) string {
	return fmt.Sprintf("%s（%s・%d年）", baseName, r.Department, r.Grade)
}
