package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/plantops/linesight/internal/api"
	"github.com/plantops/linesight/internal/assistant"
	"github.com/plantops/linesight/internal/config"
	"github.com/plantops/linesight/internal/database"
	"github.com/plantops/linesight/internal/session"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting linesight server",
		zap.String("version", "0.1.0"),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("sample_source", cfg.Data.Source),
	)

	// Initialize assistant (validates the rule profiles)
	assistantInstance, err := assistant.NewAssistant(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create assistant", zap.Error(err))
	}

	// Initialize database
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Database initialized", zap.String("path", cfg.Database.Path))

	// Session-scoped scenario store, discarded on shutdown
	sessions := session.NewStore()

	// Setup HTTP server
	handler := api.NewHandler(assistantInstance, db, sessions, cfg, logger)
	router := api.SetupRoutes(handler)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server listening", zap.String("address", addr))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := router.Run(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Shutting down server...")
	logger.Info("Server stopped")
}
