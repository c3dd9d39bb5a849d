package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/fundmgmt/fund-management-backend/internal/apperrors"
	"github.com/fundmgmt/fund-management-backend/internal/model"
	"github.com/fundmgmt/fund-management-backend/internal/repository"
)

// DestinationWriter inserts transformed fund records into the destination
// schema inside a single transaction per batch.
type DestinationWriter struct {
	db          *sql.DB
	fundRepo    *repository.FundRepository
	historyRepo *repository.PerformanceHistoryRepository
}

// NewDestinationWriter creates a writer for the given destination database.
func NewDestinationWriter(db *sql.DB) *DestinationWriter {
	return &DestinationWriter{
		db:          db,
		fundRepo:    repository.NewFundRepository(db),
		historyRepo: repository.NewPerformanceHistoryRepository(db),
	}
}

// WriteResult carries the per-batch outcome counts.
type WriteResult struct {
	Inserted         int
	SkippedDuplicate int
	HistorySeeded    int
}

// WriteAll inserts the given funds within one all-or-nothing transaction.
//
// Any per-row constraint violation (duplicate name, a fund_id already
// present in the destination) is caught: the row is counted as skipped
// and the transaction continues. Each inserted fund also gets one seeded
// performance-history entry dated at the fund's creation date. Only a
// begin/commit failure or an unexpected statement failure aborts the
// batch.
func (w *DestinationWriter) WriteAll(ctx context.Context, funds []model.Fund) (WriteResult, error) {
	var result WriteResult

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	fundRepo := w.fundRepo.WithTx(tx)
	historyRepo := w.historyRepo.WithTx(tx)

	for _, f := range funds {
		err := fundRepo.InsertFund(ctx, f)
		if errors.Is(err, apperrors.ErrDuplicateFundName) || repository.IsConstraintViolation(err) {
			log.Printf("skipping fund %q: already exists in destination: %v", f.Name, err)
			result.SkippedDuplicate++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to migrate fund %q: %w", f.Name, err)
		}
		result.Inserted++

		h := model.PerformanceHistory{
			ID:               uuid.New().String(),
			FundID:           f.ID,
			PerformanceDate:  f.CreationDate,
			PerformanceValue: f.Performance,
		}
		if err := historyRepo.InsertHistory(ctx, h); err != nil {
			return result, fmt.Errorf("failed to seed performance history for fund %q: %w", f.Name, err)
		}
		result.HistorySeeded++
	}

	if err := tx.Commit(); err != nil {
		return WriteResult{}, fmt.Errorf("failed to commit migration transaction: %w", err)
	}

	return result, nil
}
