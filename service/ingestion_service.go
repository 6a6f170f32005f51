// ABOUTME: This file implements the daily pull-transform-persist ingestion cycles
// ABOUTME: One cycle fetches one date from Fitbit and upserts one document

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"biotrackr/models"
	"biotrackr/repository"
)

// ErrPersistence is returned when the document store rejects an upsert.
var ErrPersistence = errors.New("document persistence failed")

// FoodIngestionService pulls one day of food logs from Fitbit and persists
// it as a FoodDocument. Upstream and store failures propagate to the
// scheduler; the next tick is the only retry.
type FoodIngestionService struct {
	secrets repository.SecretStore
	fitbit  FoodDriver
	repo    repository.DocumentRepository[models.FoodDocument]
	logger  *slog.Logger
}

// NewFoodIngestionService creates a food ingestion service.
func NewFoodIngestionService(
	secrets repository.SecretStore,
	fitbit FoodDriver,
	repo repository.DocumentRepository[models.FoodDocument],
	logger *slog.Logger,
) *FoodIngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FoodIngestionService{
		secrets: secrets,
		fitbit:  fitbit,
		repo:    repo,
		logger:  logger.With("component", "food_ingestion"),
	}
}

// IngestForDate runs one pull-transform-persist pass for a date.
func (s *FoodIngestionService) IngestForDate(ctx context.Context, date string) error {
	accessToken, err := s.secrets.GetSecret(ctx, models.SecretAccessToken)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrSecretUnavailable, models.SecretAccessToken, err)
	}

	food, err := s.fitbit.GetFoodLogByDate(ctx, accessToken, date)
	if err != nil {
		return fmt.Errorf("failed to fetch food log for %s: %w", date, err)
	}

	doc := models.NewFoodDocument(date, *food)
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.Info("Ingested food log", "date", date, "id", doc.ID, "entries", len(food.Foods))
	return nil
}

// IngestPreviousDay ingests the previous UTC day, the default for a
// scheduled cycle.
func (s *FoodIngestionService) IngestPreviousDay(ctx context.Context) error {
	return s.IngestForDate(ctx, models.PreviousDay(time.Now()))
}

// SleepIngestionService pulls one day of sleep logs from Fitbit and
// persists it as a SleepDocument.
type SleepIngestionService struct {
	secrets repository.SecretStore
	fitbit  SleepDriver
	repo    repository.DocumentRepository[models.SleepDocument]
	logger  *slog.Logger
}

// NewSleepIngestionService creates a sleep ingestion service.
func NewSleepIngestionService(
	secrets repository.SecretStore,
	fitbit SleepDriver,
	repo repository.DocumentRepository[models.SleepDocument],
	logger *slog.Logger,
) *SleepIngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SleepIngestionService{
		secrets: secrets,
		fitbit:  fitbit,
		repo:    repo,
		logger:  logger.With("component", "sleep_ingestion"),
	}
}

// IngestForDate runs one pull-transform-persist pass for a date.
func (s *SleepIngestionService) IngestForDate(ctx context.Context, date string) error {
	accessToken, err := s.secrets.GetSecret(ctx, models.SecretAccessToken)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrSecretUnavailable, models.SecretAccessToken, err)
	}

	sleep, err := s.fitbit.GetSleepLogByDate(ctx, accessToken, date)
	if err != nil {
		return fmt.Errorf("failed to fetch sleep log for %s: %w", date, err)
	}

	doc := models.NewSleepDocument(date, *sleep)
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.Info("Ingested sleep log", "date", date, "id", doc.ID, "sessions", len(sleep.Sleep))
	return nil
}

// IngestPreviousDay ingests the previous UTC day.
func (s *SleepIngestionService) IngestPreviousDay(ctx context.Context) error {
	return s.IngestForDate(ctx, models.PreviousDay(time.Now()))
}
