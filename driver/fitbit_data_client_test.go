package driver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biotrackr/driver"
)

func newDataClient(baseURL string) *driver.FitbitDataClient {
	return driver.NewFitbitDataClient(baseURL, 5*time.Second, 100, 10, nil)
}

func TestFitbitDataClient_GetFoodLogByDate(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/1/user/-/foods/log/date/2023-06-15.json", r.URL.Path)
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"foods": [
					{
						"logDate": "2023-06-15",
						"logId": 22100,
						"loggedFood": {"name": "Oatmeal", "calories": 150, "amount": 1}
					}
				],
				"summary": {"calories": 150, "protein": 5}
			}`))
		}))
		defer server.Close()

		food, err := newDataClient(server.URL).GetFoodLogByDate(context.Background(), "access-token", "2023-06-15")
		require.NoError(t, err)

		require.Len(t, food.Foods, 1)
		assert.Equal(t, "Oatmeal", food.Foods[0].LoggedFood.Name)
		assert.Equal(t, float64(150), food.Summary.Calories)
	})

	t.Run("upstream failure carries status and endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newDataClient(server.URL).GetFoodLogByDate(context.Background(), "access-token", "2023-06-15")
		require.Error(t, err)

		var upstreamErr *driver.UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
		assert.Contains(t, upstreamErr.Endpoint, "2023-06-15")
	})
}

func TestFitbitDataClient_GetSleepLogByDate(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/1.2/user/-/sleep/date/2023-06-15.json", r.URL.Path)
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"sleep": [
					{
						"dateOfSleep": "2023-06-15",
						"duration": 27720000,
						"efficiency": 92,
						"isMainSleep": true,
						"logId": 44300
					}
				],
				"summary": {"totalMinutesAsleep": 420, "totalSleepRecords": 1, "totalTimeInBed": 462}
			}`))
		}))
		defer server.Close()

		sleep, err := newDataClient(server.URL).GetSleepLogByDate(context.Background(), "access-token", "2023-06-15")
		require.NoError(t, err)

		require.Len(t, sleep.Sleep, 1)
		assert.Equal(t, "2023-06-15", sleep.Sleep[0].DateOfSleep)
		assert.True(t, sleep.Sleep[0].IsMainSleep)
		assert.Equal(t, 420, sleep.Summary.TotalMinutesAsleep)
	})

	t.Run("unauthorized returns upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newDataClient(server.URL).GetSleepLogByDate(context.Background(), "stale-token", "2023-06-15")
		require.Error(t, err)

		var upstreamErr *driver.UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	})
}
