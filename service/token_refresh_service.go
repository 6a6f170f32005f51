// ABOUTME: This file implements the Fitbit token refresh cycle
// ABOUTME: Reads stored credentials, exchanges the refresh token, writes back both tokens

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"biotrackr/models"
	"biotrackr/repository"
)

// ErrSecretUnavailable is returned when the secret store cannot supply the
// inputs of a refresh cycle. The cycle is abandoned and retried on the next
// scheduled tick.
var ErrSecretUnavailable = errors.New("secret store unavailable")

// TokenRefreshService keeps the Fitbit access token fresh. One cycle reads
// the refresh token and application credentials from the secret store,
// exchanges them against the Fitbit OAuth2 endpoint, and writes the new
// credential pair back.
type TokenRefreshService struct {
	secrets repository.SecretStore
	auth    AuthDriver
	logger  *slog.Logger

	// Collapses concurrent cycles into a single exchange.
	group singleflight.Group
}

// NewTokenRefreshService creates a token refresh service.
func NewTokenRefreshService(secrets repository.SecretStore, auth AuthDriver, logger *slog.Logger) *TokenRefreshService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenRefreshService{
		secrets: secrets,
		auth:    auth,
		logger:  logger.With("component", "token_refresh"),
	}
}

// RefreshCycle runs one read-exchange-write pass. A failure leaves the
// stored secrets untouched except for the documented window where the
// access token write succeeds and the refresh token write fails.
func (s *TokenRefreshService) RefreshCycle(ctx context.Context) error {
	_, err, shared := s.group.Do("refresh", func() (any, error) {
		return nil, s.refresh(ctx)
	})
	if shared {
		s.logger.Debug("Refresh cycle joined an in-flight cycle")
	}
	return err
}

func (s *TokenRefreshService) refresh(ctx context.Context) error {
	refreshToken, err := s.secrets.GetSecret(ctx, models.SecretRefreshToken)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrSecretUnavailable, models.SecretRefreshToken, err)
	}

	encodedCreds, err := s.secrets.GetSecret(ctx, models.SecretFitbitCredentials)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrSecretUnavailable, models.SecretFitbitCredentials, err)
	}

	creds, err := models.DecodeFitbitCredentials(encodedCreds)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSecretUnavailable, err)
	}

	tokens, err := s.auth.ExchangeRefreshToken(ctx, refreshToken, creds)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}

	// Access token first, refresh token second. If the second write fails
	// the next cycle runs with a stale refresh token, which Fitbit may
	// reject; that window is accepted rather than corrected here.
	if err := s.secrets.SetSecret(ctx, models.SecretAccessToken, tokens.AccessToken); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}
	if err := s.secrets.SetSecret(ctx, models.SecretRefreshToken, tokens.RefreshToken); err != nil {
		s.logger.Warn("Access token stored but refresh token write failed; stored refresh token is stale",
			"error", err)
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	s.logger.Info("Refreshed Fitbit credential pair", "expires_in", tokens.ExpiresIn)
	return nil
}
