package migration

import "fmt"

// Report aggregates the outcome counts of a migration run.
// It has no behavior beyond presentation.
type Report struct {
	Read             int
	Transformed      int
	Inserted         int
	SkippedDuplicate int
	SkippedInvalid   int
	HistorySeeded    int
}

// Skipped returns the total number of skipped rows, duplicate and invalid.
func (r Report) Skipped() int {
	return r.SkippedDuplicate + r.SkippedInvalid
}

// String renders the report for printing to standard output.
func (r Report) String() string {
	return fmt.Sprintf(
		"Migration report:\n"+
			"  read:               %d\n"+
			"  transformed:        %d\n"+
			"  inserted:           %d\n"+
			"  skipped (duplicate): %d\n"+
			"  skipped (invalid):   %d\n"+
			"  history seeded:     %d",
		r.Read, r.Transformed, r.Inserted, r.SkippedDuplicate, r.SkippedInvalid, r.HistorySeeded,
	)
}
