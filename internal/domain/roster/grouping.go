package roster

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/undokai/rostercheck/internal/domain/types"
)

// GradeGroup holds the names of one grade within a department group.
type GradeGroup struct {
	Grade string   `json:"grade"`
	Names []string `json:"names"`
}

// RosterGroup is one department block of a grouped event roster.
type RosterGroup struct {
	Department string       `json:"department"`
	Grades     []GradeGroup `json:"grades"`
}

var parenSuffix = regexp.MustCompile(`\(.+?\)`)

// GroupRoster arranges a resolved event roster by department, then grade,
// with names sorted inside each grade. Names whose base form repeats within
// the event get a grade suffix so the listing stays unambiguous; names that
// already carry a parenthesized qualifier from the sheet are left alone.
func GroupRoster(members []types.MemberIdentity) []RosterGroup {
	freq := make(map[string]int, len(members))
	for _, m := range members {
		freq[baseName(m.Name)]++
	}

	grouped := make(map[string]map[string][]string)
	for _, m := range members {
		grade := fmt.Sprintf("%d年", m.Grade)
		name := m.Name
		if freq[baseName(name)] > 1 && !parenSuffix.MatchString(name) {
			name = fmt.Sprintf("%s(%s)", name, grade)
		}
		if grouped[m.Department] == nil {
			grouped[m.Department] = make(map[string][]string)
		}
		grouped[m.Department][grade] = append(grouped[m.Department][grade], name)
	}

	departments := make([]string, 0, len(grouped))
	for d := range grouped {
		departments = append(departments, d)
	}
	sort.Strings(departments)

	out := make([]RosterGroup, 0, len(departments))
	for _, d := range departments {
		grades := make([]string, 0, len(grouped[d]))
		for g := range grouped[d] {
			grades = append(grades, g)
		}
		sort.Strings(grades)

		gg := make([]GradeGroup, 0, len(grades))
		for _, g := range grades {
			names := grouped[d][g]
			sort.Strings(names)
			gg = append(gg, GradeGroup{Grade: g, Names: names})
		}
		out = append(out, RosterGroup{Department: d, Grades: gg})
	}
	return out
}

// baseName strips parenthesized qualifiers, so 丸山(1年) and 丸山(3年) share
// the base 丸山.
func baseName(n string) string {
	return parenSuffix.ReplaceAllString(n, "")
}
