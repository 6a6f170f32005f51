// ABOUTME: This file implements the Fitbit OAuth2 token exchange client
// ABOUTME: Exchanges refresh tokens for new credential pairs over HTTPS Basic auth

package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"biotrackr/models"
)

// ErrMalformedResponse is returned when the token endpoint answers 2xx with a
// body that cannot be parsed into a credential pair.
var ErrMalformedResponse = errors.New("token response body is malformed")

// TokenExchangeError is returned when the token endpoint answers non-2xx.
// 401 means the refresh token is invalid or revoked, 429 means rate limited.
type TokenExchangeError struct {
	StatusCode int
	Body       string
}

func (e *TokenExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed with status %d", e.StatusCode)
}

// FitbitAuthClient handles OAuth2 token exchange with the Fitbit API
type FitbitAuthClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFitbitAuthClient creates a token exchange client for the Fitbit API.
func NewFitbitAuthClient(baseURL string, timeout time.Duration, logger *slog.Logger) *FitbitAuthClient {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &FitbitAuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
			},
		},
	}
}

// ExchangeRefreshToken exchanges a refresh token for a new credential pair.
// The request authenticates with HTTP Basic auth built from the application
// credentials, per the Fitbit OAuth2 contract.
func (c *FitbitAuthClient) ExchangeRefreshToken(ctx context.Context, refreshToken string, creds models.FitbitCredentials) (*models.RefreshTokenResponse, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute token exchange request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token exchange response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("Fitbit token exchange failed",
			"status_code", resp.StatusCode,
			"response_body", truncate(string(body), 256))
		return nil, &TokenExchangeError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokens models.RefreshTokenResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		c.logger.Error("Failed to parse token exchange response", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !tokens.Valid() {
		return nil, fmt.Errorf("%w: missing access or refresh token", ErrMalformedResponse)
	}

	c.logger.Info("Fitbit token exchange succeeded", "expires_in", tokens.ExpiresIn)
	return &tokens, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
