package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundscope/Fund-Discovery-Backend/internal/api"
	"github.com/fundscope/Fund-Discovery-Backend/internal/auth"
	"github.com/fundscope/Fund-Discovery-Backend/internal/config"
	"github.com/fundscope/Fund-Discovery-Backend/internal/database"
	"github.com/fundscope/Fund-Discovery-Backend/internal/repository"
	"github.com/fundscope/Fund-Discovery-Backend/internal/service"
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

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Token verifier for the auth middleware
	verifier, err := auth.NewTokenVerifier(cfg.Auth.TokenKey)
	if err != nil {
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	savedFundRepo := repository.NewSavedFundRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(fundRepo)
	savedFundService := service.NewSavedFundService(savedFundRepo)

	// Create router
	router := api.NewRouter(systemService, fundService, savedFundService, verifier, cfg)

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
