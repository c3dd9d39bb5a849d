package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fundmgmt/fund-management-backend/internal/apperrors"
	"github.com/fundmgmt/fund-management-backend/internal/model"
)

// FundRepository provides data access methods for the funds table.
type FundRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// WithTx returns a new FundRepository scoped to the provided transaction.
func (r *FundRepository) WithTx(tx *sql.Tx) *FundRepository {
	return &FundRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *FundRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetAllFunds retrieves all funds from the database.
// Returns an empty slice if no funds are found.
func (r *FundRepository) GetAllFunds() ([]model.Fund, error) {
	query := `
        SELECT fund_id, name, manager_name, description, nav, creation_date, performance, last_updated
        FROM funds
    `

	rows, err := r.getQuerier().Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query funds table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}

	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating funds table: %w", err)
	}

	return funds, nil
}

// GetFund retrieves a single fund by ID.
// Returns apperrors.ErrFundNotFound if no fund with the given ID exists.
func (r *FundRepository) GetFund(fundID string) (model.Fund, error) {
	query := `
        SELECT fund_id, name, manager_name, description, nav, creation_date, performance, last_updated
        FROM funds
        WHERE fund_id = ?
    `

	var f model.Fund
	var description sql.NullString
	var creationDateStr, lastUpdatedStr string

	err := r.getQuerier().QueryRow(query, fundID).Scan(
		&f.ID,
		&f.Name,
		&f.ManagerName,
		&description,
		&f.Nav,
		&creationDateStr,
		&f.Performance,
		&lastUpdatedStr,
	)
	if err == sql.ErrNoRows {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query funds table: %w", err)
	}

	if description.Valid {
		f.Description = description.String
	}

	f.CreationDate, err = ParseTime(creationDateStr)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to parse creation_date: %w", err)
	}
	f.LastUpdated, err = ParseTime(lastUpdatedStr)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to parse last_updated: %w", err)
	}

	return f, nil
}

// InsertFund inserts a new fund row.
// Returns apperrors.ErrDuplicateFundName if a fund with the same name already exists.
func (r *FundRepository) InsertFund(ctx context.Context, f model.Fund) error {
	query := `
        INSERT INTO funds (fund_id, name, manager_name, description, nav, creation_date, performance, last_updated)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.ManagerName,
		f.Description,
		f.Nav,
		f.CreationDate.UTC().Format(time.RFC3339),
		f.Performance,
		f.LastUpdated.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if IsUniqueNameViolation(err) {
			return apperrors.ErrDuplicateFundName
		}
		return fmt.Errorf("failed to insert fund: %w", err)
	}

	return nil
}

// UpdatePerformance updates the performance and last_updated columns of a fund.
// No other columns are touched. Returns apperrors.ErrFundNotFound if the
// fund does not exist; nothing is mutated in that case.
func (r *FundRepository) UpdatePerformance(ctx context.Context, fundID string, performance float64, updatedAt time.Time) error {
	query := `UPDATE funds SET performance = ?, last_updated = ? WHERE fund_id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query,
		performance,
		updatedAt.UTC().Format(time.RFC3339),
		fundID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fund performance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// DeleteFund deletes a fund by ID. Dependent category mappings and
// performance-history rows are removed by the database's cascade rules.
// Returns apperrors.ErrFundNotFound if the fund does not exist.
func (r *FundRepository) DeleteFund(ctx context.Context, fundID string) error {
	query := `DELETE FROM funds WHERE fund_id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete fund: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// IsUniqueNameViolation reports whether err is the SQLite uniqueness
// violation on funds.name.
func IsUniqueNameViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: funds.name")
}

// IsConstraintViolation reports whether err is any SQLite constraint
// violation (unique, primary key, check or foreign key).
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "constraint failed")
}

// scanFund scans one funds row from a multi-row result set.
func scanFund(rows *sql.Rows) (model.Fund, error) {
	var f model.Fund
	var description sql.NullString
	var creationDateStr, lastUpdatedStr string

	err := rows.Scan(
		&f.ID,
		&f.Name,
		&f.ManagerName,
		&description,
		&f.Nav,
		&creationDateStr,
		&f.Performance,
		&lastUpdatedStr,
	)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to scan funds table results: %w", err)
	}

	if description.Valid {
		f.Description = description.String
	}

	f.CreationDate, err = ParseTime(creationDateStr)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to parse creation_date: %w", err)
	}
	f.LastUpdated, err = ParseTime(lastUpdatedStr)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to parse last_updated: %w", err)
	}

	return f, nil
}
