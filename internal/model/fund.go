package model

import "time"

// Fund represents an investment fund from the destination database.
type Fund struct {
	ID           string
	Name         string
	ManagerName  string
	Description  string
	Nav          float64
	CreationDate time.Time
	Performance  float64
	LastUpdated  time.Time
}

// LegacyFund represents a row from the legacy single-table store.
// The legacy schema predates normalization: no manager, category or
// history relations, and no last_updated column.
type LegacyFund struct {
	ID           string
	Name         string
	ManagerName  string
	Description  string
	Nav          float64
	CreationDate string
	Performance  float64
}

// PerformanceHistory represents a row from the fund_performance_history table.
type PerformanceHistory struct {
	ID               string
	FundID           string
	PerformanceDate  time.Time
	PerformanceValue float64
}
