package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"biotrackr/driver"
	"biotrackr/mocks"
	"biotrackr/models"
	"biotrackr/repository"
	"biotrackr/service"
)

func TestFoodIngestionService_IngestForDate(t *testing.T) {
	t.Run("successful ingestion upserts a date-keyed document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		secrets := mocks.NewMockSecretStore(ctrl)
		fitbit := mocks.NewMockFoodDriver(ctrl)
		repo := mocks.NewMockDocumentRepository[models.FoodDocument](ctrl)

		food := &models.FoodResponse{
			Summary: models.FoodSummary{Calories: 1850},
		}

		secrets.EXPECT().
			GetSecret(gomock.Any(), models.SecretAccessToken).
			Return("access-token", nil)
		fitbit.EXPECT().
			GetFoodLogByDate(gomock.Any(), "access-token", "2023-06-15").
			Return(food, nil)
		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc models.FoodDocument) error {
				assert.Equal(t, "food-2023-06-15", doc.ID)
				assert.Equal(t, "2023-06-15", doc.Date)
				assert.Equal(t, models.DocumentTypeFood, doc.DocumentType)
				assert.Equal(t, *food, doc.Food)
				return nil
			})

		svc := service.NewFoodIngestionService(secrets, fitbit, repo, nil)
		require.NoError(t, svc.IngestForDate(context.Background(), "2023-06-15"))
	})

	t.Run("missing access token abandons the cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		secrets := mocks.NewMockSecretStore(ctrl)
		fitbit := mocks.NewMockFoodDriver(ctrl)
		repo := mocks.NewMockDocumentRepository[models.FoodDocument](ctrl)

		secrets.EXPECT().
			GetSecret(gomock.Any(), models.SecretAccessToken).
			Return("", repository.ErrSecretNotFound)

		svc := service.NewFoodIngestionService(secrets, fitbit, repo, nil)

		err := svc.IngestForDate(context.Background(), "2023-06-15")
		assert.ErrorIs(t, err, service.ErrSecretUnavailable)
	})

	t.Run("upstream failure propagates without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		secrets := mocks.NewMockSecretStore(ctrl)
		fitbit := mocks.NewMockFoodDriver(ctrl)
		repo := mocks.NewMockDocumentRepository[models.FoodDocument](ctrl)

		secrets.EXPECT().
			GetSecret(gomock.Any(), models.SecretAccessToken).
			Return("stale-token", nil)
		fitbit.EXPECT().
			GetFoodLogByDate(gomock.Any(), "stale-token", "2023-06-15").
			Return(nil, &driver.UpstreamError{StatusCode: http.StatusUnauthorized})

		svc := service.NewFoodIngestionService(secrets, fitbit, repo, nil)

		err := svc.IngestForDate(context.Background(), "2023-06-15")
		require.Error(t, err)

		var upstreamErr *driver.UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
	})

	t.Run("store failure is reported as a persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		secrets := mocks.NewMockSecretStore(ctrl)
		fitbit := mocks.NewMockFoodDriver(ctrl)
		repo := mocks.NewMockDocumentRepository[models.FoodDocument](ctrl)

		secrets.EXPECT().
			GetSecret(gomock.Any(), models.SecretAccessToken).
			Return("access-token", nil)
		fitbit.EXPECT().
			GetFoodLogByDate(gomock.Any(), "access-token", "2023-06-15").
			Return(&models.FoodResponse{}, nil)
		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		svc := service.NewFoodIngestionService(secrets, fitbit, repo, nil)

		err := svc.IngestForDate(context.Background(), "2023-06-15")
		assert.ErrorIs(t, err, service.ErrPersistence)
	})
}

func TestSleepIngestionService_IngestForDate(t *testing.T) {
	t.Run("successful ingestion upserts a date-keyed document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		secrets := mocks.NewMockSecretStore(ctrl)
		fitbit := mocks.NewMockSleepDriver(ctrl)
		repo := mocks.NewMockDocumentRepository[models.SleepDocument](ctrl)

		sleep := &models.SleepResponse{
			Summary: models.SleepSummary{TotalMinutesAsleep: 420, TotalSleepRecords: 1},
		}

		secrets.EXPECT().
			GetSecret(gomock.Any(), models.SecretAccessToken).
			Return("access-token", nil)
		fitbit.EXPECT().
			GetSleepLogByDate(gomock.Any(), "access-token", "2023-06-15").
			Return(sleep, nil)
		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc models.SleepDocument) error {
				assert.Equal(t, "sleep-2023-06-15", doc.ID)
				assert.Equal(t, models.DocumentTypeSleep, doc.DocumentType)
				assert.Equal(t, *sleep, doc.Sleep)
				return nil
			})

		svc := service.NewSleepIngestionService(secrets, fitbit, repo, nil)
		require.NoError(t, svc.IngestForDate(context.Background(), "2023-06-15"))
	})

	t.Run("store failure is reported as a persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		secrets := mocks.NewMockSecretStore(ctrl)
		fitbit := mocks.NewMockSleepDriver(ctrl)
		repo := mocks.NewMockDocumentRepository[models.SleepDocument](ctrl)

		secrets.EXPECT().
			GetSecret(gomock.Any(), models.SecretAccessToken).
			Return("access-token", nil)
		fitbit.EXPECT().
			GetSleepLogByDate(gomock.Any(), "access-token", "2023-06-15").
			Return(&models.SleepResponse{}, nil)
		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		svc := service.NewSleepIngestionService(secrets, fitbit, repo, nil)

		err := svc.IngestForDate(context.Background(), "2023-06-15")
		assert.ErrorIs(t, err, service.ErrPersistence)
	})
}
