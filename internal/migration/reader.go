// Package migration moves fund records from the legacy single-table store
// into the normalized destination schema.
//
// The pipeline is a one-shot read-transform-write pass: the legacy store is
// read fully into memory, each record is mapped to the destination shape,
// and all rows are written inside a single transaction. Row-level problems
// (invalid records, duplicate names) are skipped and counted; only a
// source-open failure or a transaction failure aborts the run.
//
// The legacy store carries no manager or category data, so fund_managers,
// fund_categories and fund_category_mappings are intentionally left empty.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/fundmgmt/fund-management-backend/internal/apperrors"
	"github.com/fundmgmt/fund-management-backend/internal/model"
)

// SourceReader reads legacy fund records from the pre-normalization store.
type SourceReader struct {
	db *sql.DB
}

// OpenSource opens the legacy store read-only.
// Returns apperrors.ErrStoreUnavailable if the file does not exist or the
// connection cannot be established.
func OpenSource(path string) (*SourceReader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, path, err)
	}

	return &SourceReader{db: db}, nil
}

// NewSourceReader wraps an already-open legacy store connection.
func NewSourceReader(db *sql.DB) *SourceReader {
	return &SourceReader{db: db}
}

// ReadAll loads every legacy fund record into memory, in storage order.
// The legacy store holds at most a few hundred rows, so no pagination.
func (r *SourceReader) ReadAll(ctx context.Context) ([]model.LegacyFund, error) {
	query := `
        SELECT fund_id, name, manager_name, description, nav, creation_date, performance
        FROM funds
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy funds table: %w", err)
	}
	defer rows.Close()

	funds := []model.LegacyFund{}

	for rows.Next() {
		var f model.LegacyFund
		var description, creationDate sql.NullString

		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.ManagerName,
			&description,
			&f.Nav,
			&creationDate,
			&f.Performance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legacy funds table results: %w", err)
		}

		if description.Valid {
			f.Description = description.String
		}
		if creationDate.Valid {
			f.CreationDate = creationDate.String
		}

		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legacy funds table: %w", err)
	}

	return funds, nil
}

// Close releases the legacy store connection.
func (r *SourceReader) Close() error {
	return r.db.Close()
}
