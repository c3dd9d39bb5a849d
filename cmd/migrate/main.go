// Command migrate performs the one-shot migration of fund records from the
// legacy single-table store into the normalized destination schema.
//
// It takes no flags: source and destination paths come from the same
// environment configuration as the server (LEGACY_DB_PATH, DB_PATH). The
// migration report is printed to standard output on completion.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fundmgmt/fund-management-backend/internal/config"
	"github.com/fundmgmt/fund-management-backend/internal/database"
	"github.com/fundmgmt/fund-management-backend/internal/migration"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting migration from %s to %s", cfg.Database.LegacyPath, cfg.Database.Path)

	source, err := migration.OpenSource(cfg.Database.LegacyPath)
	if err != nil {
		log.Fatalf("Failed to open legacy store: %v", err)
	}
	defer source.Close()

	dest, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open destination database: %v", err)
	}
	defer dest.Close()

	// A fresh destination needs its schema before the first run
	if err := database.Migrate(dest); err != nil {
		log.Fatalf("Failed to apply destination schema: %v", err)
	}

	report, err := migration.Run(context.Background(), source, dest)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	fmt.Println(report)
}
