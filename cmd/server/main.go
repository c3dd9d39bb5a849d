package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fundmgmt/fund-management-backend/internal/api"
	"github.com/fundmgmt/fund-management-backend/internal/config"
	"github.com/fundmgmt/fund-management-backend/internal/database"
	"github.com/fundmgmt/fund-management-backend/internal/repository"
	"github.com/fundmgmt/fund-management-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations before serving any request
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply schema migrations: %v", err)
	}

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	historyRepo := repository.NewPerformanceHistoryRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(db, fundRepo, historyRepo)

	// Schedule the daily performance-history snapshot
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Scheduler.HistorySnapshotSchedule, func() {
		count, err := fundService.SnapshotPerformance(context.Background())
		if err != nil {
			log.Printf("Performance snapshot failed: %v", err)
			return
		}
		log.Printf("Performance snapshot recorded %d funds", count)
	})
	if err != nil {
		log.Fatalf("Failed to schedule performance snapshot: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, fundService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
