package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	service string
	db      Pinger
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service string, db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		service: service,
		db:      db,
		logger:  logger,
	}
}

// LivenessCheck reports whether the service and its document store are
// reachable.
// @Summary Liveness check
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz/liveness [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Liveness check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now(),
			Service:   h.service,
		})
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   h.service,
	})
}

// HealthResponse is the liveness check body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}
