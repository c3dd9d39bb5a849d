package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fundmgmt/fund-management-backend/internal/api/handlers"
	custommiddleware "github.com/fundmgmt/fund-management-backend/internal/api/middleware"
	"github.com/fundmgmt/fund-management-backend/internal/config"
	"github.com/fundmgmt/fund-management-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, fundService *service.FundService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/funds", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(fundService)
			r.Get("/", fundHandler.GetAllFunds)
			r.Post("/", fundHandler.CreateFund)

			r.Route("/{fundId}", func(r chi.Router) {
				r.Get("/", fundHandler.GetFund)
				r.Patch("/performance", fundHandler.UpdatePerformance)
				r.Delete("/", fundHandler.DeleteFund)
			})
		})
	})

	return r
}
