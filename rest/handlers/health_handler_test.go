package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biotrackr/rest/handlers"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func doLiveness(t *testing.T, db handlers.Pinger) *httptest.ResponseRecorder {
	t.Helper()

	handler := handlers.NewHealthHandler("food-api", db, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz/liveness", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.LivenessCheck(e.NewContext(req, rec)))
	return rec
}

func TestHealthHandler_LivenessCheck(t *testing.T) {
	t.Run("healthy store returns 200", func(t *testing.T) {
		rec := doLiveness(t, fakePinger{})

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "food-api", resp.Service)
	})

	t.Run("unreachable store returns 503", func(t *testing.T) {
		rec := doLiveness(t, fakePinger{err: errors.New("connection refused")})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp handlers.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
