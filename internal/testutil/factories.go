package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fundmgmt/fund-management-backend/internal/model"
)

var nameCounter atomic.Int64

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MakeFundName generates a unique fund name with the given prefix.
func MakeFundName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, nameCounter.Add(1))
}

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund
//	fund := testutil.NewFund().
//	    WithName("Global Equity Fund").
//	    WithNav(250.75).
//	    WithPerformance(-3.2).
//	    Build(t, db)
type FundBuilder struct {
	ID           string
	Name         string
	ManagerName  string
	Description  string
	Nav          float64
	CreationDate time.Time
	Performance  float64
	LastUpdated  time.Time
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &FundBuilder{
		ID:           MakeID(),
		Name:         MakeFundName("Test Fund"),
		ManagerName:  "Test Manager",
		Description:  "Test description",
		Nav:          100.50,
		CreationDate: now,
		Performance:  12.5,
		LastUpdated:  now,
	}
}

// WithID sets a custom ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithManagerName sets a custom manager name.
func (b *FundBuilder) WithManagerName(name string) *FundBuilder {
	b.ManagerName = name
	return b
}

// WithDescription sets a custom description.
func (b *FundBuilder) WithDescription(desc string) *FundBuilder {
	b.Description = desc
	return b
}

// WithNav sets a custom net asset value.
func (b *FundBuilder) WithNav(nav float64) *FundBuilder {
	b.Nav = nav
	return b
}

// WithPerformance sets a custom performance value.
func (b *FundBuilder) WithPerformance(performance float64) *FundBuilder {
	b.Performance = performance
	return b
}

// WithCreationDate sets a custom creation date.
func (b *FundBuilder) WithCreationDate(date time.Time) *FundBuilder {
	b.CreationDate = date
	return b
}

// WithLastUpdated sets a custom last-updated timestamp.
func (b *FundBuilder) WithLastUpdated(date time.Time) *FundBuilder {
	b.LastUpdated = date
	return b
}

// Build creates the fund in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	query := `
		INSERT INTO funds (fund_id, name, manager_name, description, nav, creation_date, performance, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Name,
		b.ManagerName,
		b.Description,
		b.Nav,
		b.CreationDate.Format(time.RFC3339),
		b.Performance,
		b.LastUpdated.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	return model.Fund{
		ID:           b.ID,
		Name:         b.Name,
		ManagerName:  b.ManagerName,
		Description:  b.Description,
		Nav:          b.Nav,
		CreationDate: b.CreationDate,
		Performance:  b.Performance,
		LastUpdated:  b.LastUpdated,
	}
}

// CreateFund creates a fund with the given name and default values.
func CreateFund(t *testing.T, db *sql.DB, name string) model.Fund {
	t.Helper()
	return NewFund().WithName(name).Build(t, db)
}

// LegacyFundBuilder provides a fluent interface for creating rows in the
// legacy single-table store (see SetupLegacyTestDB).
type LegacyFundBuilder struct {
	ID           string
	Name         string
	ManagerName  string
	Description  string
	Nav          float64
	CreationDate string
	Performance  float64
}

// NewLegacyFund creates a LegacyFundBuilder with sensible defaults.
func NewLegacyFund() *LegacyFundBuilder {
	return &LegacyFundBuilder{
		ID:           MakeID(),
		Name:         MakeFundName("Legacy Fund"),
		ManagerName:  "Legacy Manager",
		Description:  "Legacy description",
		Nav:          100.50,
		CreationDate: time.Now().UTC().Truncate(time.Second).Format(time.RFC3339),
		Performance:  12.5,
	}
}

// WithID sets a custom ID.
func (b *LegacyFundBuilder) WithID(id string) *LegacyFundBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *LegacyFundBuilder) WithName(name string) *LegacyFundBuilder {
	b.Name = name
	return b
}

// WithNav sets a custom net asset value.
func (b *LegacyFundBuilder) WithNav(nav float64) *LegacyFundBuilder {
	b.Nav = nav
	return b
}

// WithPerformance sets a custom performance value.
func (b *LegacyFundBuilder) WithPerformance(performance float64) *LegacyFundBuilder {
	b.Performance = performance
	return b
}

// WithCreationDate sets a custom raw creation-date string.
func (b *LegacyFundBuilder) WithCreationDate(date string) *LegacyFundBuilder {
	b.CreationDate = date
	return b
}

// Build creates the legacy fund row in the database and returns it.
func (b *LegacyFundBuilder) Build(t *testing.T, db *sql.DB) model.LegacyFund {
	t.Helper()

	query := `
		INSERT INTO funds (fund_id, name, manager_name, description, nav, creation_date, performance)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Name,
		b.ManagerName,
		b.Description,
		b.Nav,
		b.CreationDate,
		b.Performance,
	)
	if err != nil {
		t.Fatalf("Failed to create legacy test fund: %v", err)
	}

	return model.LegacyFund{
		ID:           b.ID,
		Name:         b.Name,
		ManagerName:  b.ManagerName,
		Description:  b.Description,
		Nav:          b.Nav,
		CreationDate: b.CreationDate,
		Performance:  b.Performance,
	}
}

// CreatePerformanceHistory inserts a performance-history row for the fund.
func CreatePerformanceHistory(t *testing.T, db *sql.DB, fundID string, value float64) model.PerformanceHistory {
	t.Helper()

	h := model.PerformanceHistory{
		ID:               MakeID(),
		FundID:           fundID,
		PerformanceDate:  time.Now().UTC().Truncate(time.Second),
		PerformanceValue: value,
	}

	query := `
		INSERT INTO fund_performance_history (history_id, fund_id, performance_date, performance_value)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, h.ID, h.FundID, h.PerformanceDate.Format(time.RFC3339), h.PerformanceValue)
	if err != nil {
		t.Fatalf("Failed to create test performance history: %v", err)
	}

	return h
}

// CreateCategoryWithMapping inserts a category and maps the fund to it.
// Returns the category ID. Used to verify cascade deletes.
func CreateCategoryWithMapping(t *testing.T, db *sql.DB, fundID string) string {
	t.Helper()

	categoryID := MakeID()
	if _, err := db.Exec(
		`INSERT INTO fund_categories (category_id, name, description) VALUES (?, ?, ?)`,
		categoryID, MakeFundName("Test Category"), "Test category description",
	); err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	if _, err := db.Exec(
		`INSERT INTO fund_category_mappings (mapping_id, fund_id, category_id) VALUES (?, ?, ?)`,
		MakeID(), fundID, categoryID,
	); err != nil {
		t.Fatalf("Failed to create test category mapping: %v", err)
	}

	return categoryID
}
