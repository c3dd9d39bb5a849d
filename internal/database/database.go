package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens the destination fund store at the given path and verifies
// the connection. Foreign-key enforcement is switched on so that deleting
// a fund cascades to its category mappings and performance history;
// SQLite leaves it off per connection by default.
//
// Timestamps are stored as ISO-8601 text in UTC, so no connection-level
// timezone handling is needed.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// HealthCheck reports whether the fund store is reachable.
// Backs the /api/system/health endpoint.
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}
