package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"promptimize/internal/config"
	"promptimize/internal/domain/repositories"
	"promptimize/internal/handler"
	"promptimize/internal/middleware"
	"promptimize/internal/repository/file"
	"promptimize/internal/repository/memory"
	"promptimize/internal/repository/postgres"
	"promptimize/internal/rules"
	historySvc "promptimize/internal/service/history"
	improveSvc "promptimize/internal/service/improve"
	promptSvc "promptimize/internal/service/prompt"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logger, logFile, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"history_backend", cfg.HistoryBackend,
	)

	ctx := context.Background()

	// Select the history storage backend
	var storage repositories.HistoryStorage
	switch cfg.HistoryBackend {
	case "postgres":
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		tables := postgres.NewTableNames(cfg.TablePrefix)
		storage = postgres.NewHistoryStorage(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		})

		logger.Info("database connected", "table", tables.History)
	case "memory":
		storage = memory.NewHistoryStorage()
	default:
		storage = file.NewHistoryStorage(cfg.HistoryPath, logger)
	}

	// Load the heuristic rule registry
	registry, err := rules.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load rules registry: %v", err)
	}
	logger.Info("rules registry initialized")

	// Create services
	prompts := promptSvc.NewService(registry)
	history := historySvc.NewService(ctx, storage, logger)
	improver := improveSvc.NewService(prompts, history, cfg.ImproveDelay, logger)

	// Create handlers
	promptHandler := handler.NewPromptHandler(improver, prompts, logger)
	historyHandler := handler.NewHistoryHandler(history, prompts, logger)
	shareHandler := handler.NewShareHandler(history, cfg.ShareBaseURL, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", promptHandler.HealthCheck)

	// Prompt routes
	mux.HandleFunc("POST /api/improve", promptHandler.ImprovePrompt)
	mux.HandleFunc("POST /api/analyze", promptHandler.AnalyzePrompt)

	// History routes
	mux.HandleFunc("GET /api/history", historyHandler.ListHistory)
	mux.HandleFunc("GET /api/history/{id}/versions", historyHandler.GetVersionHistory)
	mux.HandleFunc("POST /api/history/{id}/favorite", historyHandler.ToggleFavorite)
	mux.HandleFunc("DELETE /api/history/{id}", historyHandler.DeleteChat)

	// Share routes
	mux.HandleFunc("POST /api/share", shareHandler.CreateShareLink)
	mux.HandleFunc("GET /api/share/{token}", shareHandler.OpenShareLink)

	// Build middleware chain
	var httpHandler http.Handler = mux
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
