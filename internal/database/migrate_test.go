package database_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/fundmgmt/fund-management-backend/internal/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestOpen(t *testing.T) {
	t.Run("opens a file-backed store with foreign keys enforced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "funds.db")

		db, err := database.Open(path)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		t.Cleanup(func() {
			db.Close()
		})

		if err := database.Migrate(db); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}

		// A mapping for a fund that does not exist must be rejected
		_, err = db.Exec(`
			INSERT INTO fund_category_mappings (mapping_id, fund_id, category_id)
			VALUES ('m-1', 'missing-fund', 'missing-category')
		`)
		if err == nil {
			t.Error("Expected foreign key violation, got nil")
		}
	})
}

func TestMigrate(t *testing.T) {
	t.Run("creates the full destination schema", func(t *testing.T) {
		db := openTestDB(t)

		if err := database.Migrate(db); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}

		tables := []string{
			"funds",
			"fund_managers",
			"fund_categories",
			"fund_category_mappings",
			"fund_performance_history",
		}

		for _, table := range tables {
			var name string
			err := db.QueryRow(
				`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
			).Scan(&name)
			if err != nil {
				t.Errorf("Expected table %s to exist: %v", table, err)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := openTestDB(t)

		if err := database.Migrate(db); err != nil {
			t.Fatalf("First Migrate failed: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			t.Fatalf("Second Migrate failed: %v", err)
		}
	})

	t.Run("enforces the nav check constraint", func(t *testing.T) {
		db := openTestDB(t)

		if err := database.Migrate(db); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}

		_, err := db.Exec(`
			INSERT INTO funds (fund_id, name, manager_name, nav, creation_date, performance, last_updated)
			VALUES ('id-1', 'Bad Fund', 'Jane', -1, '2026-01-01T00:00:00Z', 0, '2026-01-01T00:00:00Z')
		`)
		if err == nil {
			t.Error("Expected CHECK constraint violation for negative nav, got nil")
		}
	})
}
