package migration

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/fundmgmt/fund-management-backend/internal/model"
)

// Run executes the full migration pipeline: read every legacy record,
// transform each to the destination shape, and write the batch in one
// transaction against dest.
//
// Invalid legacy rows and duplicate names are skipped and counted in the
// returned report; the run only fails on a read error or a transaction
// failure. Re-running against the same destination is idempotent insofar
// as previously migrated names are skipped, not overwritten.
func Run(ctx context.Context, source *SourceReader, dest *sql.DB) (Report, error) {
	var report Report

	legacy, err := source.ReadAll(ctx)
	if err != nil {
		return report, err
	}
	report.Read = len(legacy)

	now := time.Now().UTC()

	transformed := make([]model.Fund, 0, len(legacy))
	for _, l := range legacy {
		f, err := Transform(l, now)
		if err != nil {
			log.Printf("skipping legacy fund %s: %v", l.ID, err)
			report.SkippedInvalid++
			continue
		}
		transformed = append(transformed, f)
	}
	report.Transformed = len(transformed)

	result, err := NewDestinationWriter(dest).WriteAll(ctx, transformed)
	if err != nil {
		return report, err
	}

	report.Inserted = result.Inserted
	report.SkippedDuplicate = result.SkippedDuplicate
	report.HistorySeeded = result.HistorySeeded

	return report, nil
}
