package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database with the destination
// schema for testing. The database is automatically cleaned up when the
// test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := openMemoryDB(t)

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return db
}

// SetupLegacyTestDB creates an in-memory SQLite database with the legacy
// single-table schema, for migration tests.
func SetupLegacyTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := openMemoryDB(t)

	schema := `
		CREATE TABLE IF NOT EXISTS funds (
			fund_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			manager_name TEXT NOT NULL,
			description TEXT,
			nav REAL NOT NULL,
			creation_date TEXT NOT NULL,
			performance REAL NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create legacy test schema: %v", err)
	}

	return db
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all destination tables for testing.
// Schema is synchronized with the goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Funds table
		CREATE TABLE IF NOT EXISTS funds (
			fund_id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			manager_name VARCHAR(100) NOT NULL,
			description TEXT,
			nav REAL NOT NULL CHECK (nav >= 0),
			creation_date DATETIME NOT NULL,
			performance REAL NOT NULL,
			last_updated DATETIME NOT NULL
		);

		-- Fund managers table
		CREATE TABLE IF NOT EXISTS fund_managers (
			manager_id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			email VARCHAR(255),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Fund categories table
		CREATE TABLE IF NOT EXISTS fund_categories (
			category_id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT
		);

		-- Fund-category junction table
		CREATE TABLE IF NOT EXISTS fund_category_mappings (
			mapping_id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id VARCHAR(36) NOT NULL,
			category_id VARCHAR(36) NOT NULL,
			FOREIGN KEY(fund_id) REFERENCES funds(fund_id) ON DELETE CASCADE,
			FOREIGN KEY(category_id) REFERENCES fund_categories(category_id) ON DELETE CASCADE,
			CONSTRAINT unique_fund_category UNIQUE (fund_id, category_id)
		);

		-- Performance history table
		CREATE TABLE IF NOT EXISTS fund_performance_history (
			history_id VARCHAR(36) NOT NULL PRIMARY KEY,
			fund_id VARCHAR(36) NOT NULL,
			performance_date DATETIME NOT NULL,
			performance_value REAL NOT NULL,
			FOREIGN KEY(fund_id) REFERENCES funds(fund_id) ON DELETE CASCADE
		);

		-- Indexes for performance
		CREATE INDEX IF NOT EXISTS ix_fund_category_mappings_fund_id ON fund_category_mappings(fund_id);
		CREATE INDEX IF NOT EXISTS ix_fund_category_mappings_category_id ON fund_category_mappings(category_id);
		CREATE INDEX IF NOT EXISTS ix_fund_performance_history_fund_id ON fund_performance_history(fund_id);
		CREATE INDEX IF NOT EXISTS ix_fund_performance_history_date ON fund_performance_history(performance_date);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables in dependency order.
// Useful for reusing the same database across multiple tests.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	// Order matters: delete children before parents due to foreign keys
	tables := []string{
		"fund_performance_history",
		"fund_category_mappings",
		"fund_categories",
		"fund_managers",
		"funds",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "funds", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
