package testutil

import (
	"database/sql"
	"testing"

	"github.com/fundmgmt/fund-management-backend/internal/repository"
	"github.com/fundmgmt/fund-management-backend/internal/service"
)

// NewTestFundService creates a FundService wired to the given test database.
func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	return service.NewFundService(
		db,
		repository.NewFundRepository(db),
		repository.NewPerformanceHistoryRepository(db),
	)
}

// NewTestSystemService creates a SystemService wired to the given test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
