package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fundmgmt/fund-management-backend/internal/model"
)

// PerformanceHistoryRepository provides data access methods for the
// fund_performance_history table.
type PerformanceHistoryRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPerformanceHistoryRepository creates a new PerformanceHistoryRepository
// with the provided database connection.
func NewPerformanceHistoryRepository(db *sql.DB) *PerformanceHistoryRepository {
	return &PerformanceHistoryRepository{db: db}
}

// WithTx returns a new PerformanceHistoryRepository scoped to the provided transaction.
func (r *PerformanceHistoryRepository) WithTx(tx *sql.Tx) *PerformanceHistoryRepository {
	return &PerformanceHistoryRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *PerformanceHistoryRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// InsertHistory inserts a single performance-history row.
func (r *PerformanceHistoryRepository) InsertHistory(ctx context.Context, h model.PerformanceHistory) error {
	query := `
        INSERT INTO fund_performance_history (history_id, fund_id, performance_date, performance_value)
        VALUES (?, ?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		h.ID,
		h.FundID,
		h.PerformanceDate.UTC().Format(time.RFC3339),
		h.PerformanceValue,
	)
	if err != nil {
		return fmt.Errorf("failed to insert performance history: %w", err)
	}

	return nil
}

// GetHistoryForFund retrieves all performance-history rows for a fund,
// oldest first. Returns an empty slice if none exist.
func (r *PerformanceHistoryRepository) GetHistoryForFund(fundID string) ([]model.PerformanceHistory, error) {
	query := `
        SELECT history_id, fund_id, performance_date, performance_value
        FROM fund_performance_history
        WHERE fund_id = ?
        ORDER BY performance_date ASC
    `

	rows, err := r.getQuerier().Query(query, fundID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_performance_history table: %w", err)
	}
	defer rows.Close()

	history := []model.PerformanceHistory{}

	for rows.Next() {
		var h model.PerformanceHistory
		var dateStr string

		err := rows.Scan(
			&h.ID,
			&h.FundID,
			&dateStr,
			&h.PerformanceValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund_performance_history results: %w", err)
		}

		h.PerformanceDate, err = ParseTime(dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse performance_date: %w", err)
		}

		history = append(history, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_performance_history table: %w", err)
	}

	return history, nil
}
