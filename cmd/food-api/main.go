// ABOUTME: This is the entrypoint for the food query API
// ABOUTME: Serves paginated read endpoints over persisted food documents

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"biotrackr/config"
	"biotrackr/models"
	"biotrackr/repository"
	"biotrackr/rest"
	"biotrackr/utils/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load("food-api")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Starting food query API",
		"host", cfg.HTTP.Host,
		"port", cfg.HTTP.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := repository.NewPostgresPool(ctx, cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to document store", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		appLogger.Error("Failed to ensure document schema", "error", err)
		os.Exit(1)
	}

	repo := repository.NewPostgresDocumentRepository[models.FoodDocument](pool, models.DocumentTypeFood, appLogger)

	e := rest.NewRouter(rest.RouterConfig[models.FoodDocument]{
		ServiceName: cfg.ServiceName,
		Repo:        repo,
		DB:          pool,
		Logger:      appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Server exited")
}
