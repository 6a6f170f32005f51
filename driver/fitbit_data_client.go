// ABOUTME: This file implements the Fitbit data API client for daily logs
// ABOUTME: Fetches food and sleep logs by date with bearer auth and rate limiting

package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"biotrackr/models"
	"biotrackr/utils"
)

// UpstreamError is returned when a Fitbit data endpoint answers non-2xx.
type UpstreamError struct {
	StatusCode int
	Endpoint   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("fitbit request to %s failed with status %d", e.Endpoint, e.StatusCode)
}

// FitbitDataClient fetches daily health data from the Fitbit API
type FitbitDataClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *utils.CircuitBreaker
	logger     *slog.Logger
}

// NewFitbitDataClient creates a data client for the Fitbit API. The limiter
// keeps the client inside Fitbit's per-hour request quota.
func NewFitbitDataClient(baseURL string, timeout time.Duration, rps float64, burst int, logger *slog.Logger) *FitbitDataClient {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if rps <= 0 {
		rps = 2
	}
	if burst < 1 {
		burst = 1
	}

	return &FitbitDataClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		breaker: utils.NewCircuitBreaker(nil, logger),
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetFoodLogByDate fetches the food log for a date (YYYY-MM-DD).
func (c *FitbitDataClient) GetFoodLogByDate(ctx context.Context, accessToken, date string) (*models.FoodResponse, error) {
	endpoint := fmt.Sprintf("/1/user/-/foods/log/date/%s.json", date)

	var food models.FoodResponse
	if err := c.getJSON(ctx, endpoint, accessToken, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// GetSleepLogByDate fetches the sleep log for a date (YYYY-MM-DD).
func (c *FitbitDataClient) GetSleepLogByDate(ctx context.Context, accessToken, date string) (*models.SleepResponse, error) {
	endpoint := fmt.Sprintf("/1.2/user/-/sleep/date/%s.json", date)

	var sleep models.SleepResponse
	if err := c.getJSON(ctx, endpoint, accessToken, &sleep); err != nil {
		return nil, err
	}
	return &sleep, nil
}

func (c *FitbitDataClient) getJSON(ctx context.Context, endpoint, accessToken string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait aborted: %w", err)
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.doGet(ctx, endpoint, accessToken, out)
	})
}

func (c *FitbitDataClient) doGet(ctx context.Context, endpoint, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create fitbit request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute fitbit request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Fitbit data request failed",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"response_body", truncate(string(body), 256))
		return &UpstreamError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode fitbit response from %s: %w", endpoint, err)
	}

	return nil
}
