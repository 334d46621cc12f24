package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api/handlers"
	custommiddleware "github.com/fundscope/Fund-Discovery-Backend/internal/api/middleware"
	"github.com/fundscope/Fund-Discovery-Backend/internal/auth"
	"github.com/fundscope/Fund-Discovery-Backend/internal/config"
	"github.com/fundscope/Fund-Discovery-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	fundService *service.FundService,
	savedFundService *service.SavedFundService,
	verifier *auth.TokenVerifier,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	bearerAuth := custommiddleware.BearerAuth(verifier)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace (unauthenticated)
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/funds", func(r chi.Router) {
			r.Use(bearerAuth)
			fundHandler := handlers.NewFundHandler(fundService)
			r.Get("/", fundHandler.Funds)
			r.Get("/meta/categories", fundHandler.FundMetadata)
			r.Get("/{fundId}", fundHandler.GetFund)
		})

		r.Route("/saved-funds", func(r chi.Router) {
			r.Use(bearerAuth)
			savedFundHandler := handlers.NewSavedFundHandler(savedFundService)
			r.Get("/", savedFundHandler.SavedFunds)
			r.Post("/", savedFundHandler.SaveFund)
			r.Delete("/{fundId}", savedFundHandler.RemoveSavedFund)
		})
	})

	return r
}
