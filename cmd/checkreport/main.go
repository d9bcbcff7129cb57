// Command checkreport prints the validation report for a roster dataset as
// JSON and exits non-zero when the report contains errors, so it can gate a
// dataset change in CI or a pre-print check.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/undokai/rostercheck/internal/adapters/dataset"
	"github.com/undokai/rostercheck/internal/domain/checks"
)

func main() {
	path := flag.String("dataset", "", "path to a YAML dataset; empty uses the embedded roster")
	flag.Parse()

	var (
		d   *dataset.Dataset
		err error
	)
	if *path != "" {
		d, err = dataset.Load(*path)
	} else {
		d, err = dataset.Default()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "checkreport:", err)
		os.Exit(2)
	}

	builder := checks.NewBuilder(d.Rules, d.Identities, checks.WithSchool(d.School))
	report, err := builder.Build(d.Entries)
	if err != nil {
		fmt.Fprintln(os.Stderr, "checkreport:", err)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintln(os.Stderr, "checkreport:", err)
		os.Exit(2)
	}

	if report.Summary.Errors > 0 {
		os.Exit(1)
	}
}
