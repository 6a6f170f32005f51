// ABOUTME: This is the entrypoint for the Fitbit token refresh worker
// ABOUTME: Runs RefreshCycle on an interval until signalled to stop

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"biotrackr/config"
	"biotrackr/driver"
	"biotrackr/repository"
	"biotrackr/service"
	"biotrackr/service/scheduler"
	"biotrackr/utils/logger"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load("auth-worker")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Starting auth worker",
		"refresh_interval", cfg.Refresh.Interval,
		"secret_backend", cfg.Secrets.Backend)

	secrets, err := newSecretStore(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize secret store", "error", err)
		os.Exit(1)
	}

	authClient := driver.NewFitbitAuthClient(cfg.Fitbit.BaseURL, cfg.Fitbit.RequestTimeout, appLogger)
	refreshService := service.NewTokenRefreshService(secrets, authClient, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler("token_refresh", refreshService.RefreshCycle, scheduler.Config{
		Interval:   cfg.Refresh.Interval,
		RunOnStart: cfg.Refresh.RunOnStart,
		RunTimeout: cfg.Fitbit.RequestTimeout * 2,
	}, appLogger)
	sched.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Auth worker shutting down...")
	sched.Stop()
	appLogger.Info("Auth worker exited")
}

func newSecretStore(cfg *config.Config, appLogger *slog.Logger) (repository.SecretStore, error) {
	if cfg.Secrets.Backend == config.SecretBackendEnv {
		return repository.NewEnvSecretStore(appLogger), nil
	}
	return repository.NewKubernetesSecretStore(cfg.Secrets.Namespace, cfg.Secrets.SecretName, appLogger)
}
