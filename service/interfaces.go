// ABOUTME: Service layer driver contracts for the Fitbit API clients
// ABOUTME: Narrow interfaces so services can be tested against mocks

//go:generate mockgen -source=interfaces.go -destination=../mocks/driver_mocks.go -package=mocks

package service

import (
	"context"

	"biotrackr/models"
)

// AuthDriver exchanges refresh tokens with the Fitbit OAuth2 endpoint.
type AuthDriver interface {
	ExchangeRefreshToken(ctx context.Context, refreshToken string, creds models.FitbitCredentials) (*models.RefreshTokenResponse, error)
}

// FoodDriver fetches daily food logs from the Fitbit API.
type FoodDriver interface {
	GetFoodLogByDate(ctx context.Context, accessToken, date string) (*models.FoodResponse, error)
}

// SleepDriver fetches daily sleep logs from the Fitbit API.
type SleepDriver interface {
	GetSleepLogByDate(ctx context.Context, accessToken, date string) (*models.SleepResponse, error)
}
