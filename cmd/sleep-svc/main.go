// ABOUTME: This is the entrypoint for the sleep ingestion worker
// ABOUTME: Pulls the previous day's Fitbit sleep log on an interval

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
	"biotrackr/models"
	"biotrackr/repository"
	"biotrackr/service"
	"biotrackr/service/scheduler"
	"biotrackr/utils/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load("sleep-svc")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Starting sleep ingestion worker",
		"ingestion_interval", cfg.Ingestion.Interval,
		"secret_backend", cfg.Secrets.Backend)

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

	secrets, err := newSecretStore(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize secret store", "error", err)
		os.Exit(1)
	}

	dataClient := driver.NewFitbitDataClient(
		cfg.Fitbit.BaseURL,
		cfg.Fitbit.RequestTimeout,
		cfg.Fitbit.RateLimitRPS,
		cfg.Fitbit.RateLimitBurst,
		appLogger)
	repo := repository.NewPostgresDocumentRepository[models.SleepDocument](pool, models.DocumentTypeSleep, appLogger)
	ingestion := service.NewSleepIngestionService(secrets, dataClient, repo, appLogger)

	sched := scheduler.NewScheduler("sleep_ingestion", ingestion.IngestPreviousDay, scheduler.Config{
		Interval:   cfg.Ingestion.Interval,
		RunOnStart: cfg.Ingestion.RunOnStart,
		RunTimeout: cfg.Fitbit.RequestTimeout * 2,
	}, appLogger)
	sched.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Sleep ingestion worker shutting down...")
	sched.Stop()
	appLogger.Info("Sleep ingestion worker exited")
}

func newSecretStore(cfg *config.Config, appLogger *slog.Logger) (repository.SecretStore, error) {
	if cfg.Secrets.Backend == config.SecretBackendEnv {
		return repository.NewEnvSecretStore(appLogger), nil
	}
	return repository.NewKubernetesSecretStore(cfg.Secrets.Namespace, cfg.Secrets.SecretName, appLogger)
}
