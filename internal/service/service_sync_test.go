package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/mock"
	"github.com/MKhiriev/pulse-keeper/models"
)

func newTestExchangeSvc(t *testing.T, ctrl *gomock.Controller, quota int64) (ExchangeService, *mock.MockHubMeasurementRepository) {
	t.Helper()
	mockRepo := mock.NewMockHubMeasurementRepository(ctrl)
	return NewExchangeService(mockRepo, quota, logger.Nop()), mockRepo
}

func TestExchangeService_FullExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestExchangeSvc(t, ctrl, 0)
	ctx := context.Background()

	incoming := []models.Measurement{{RecordID: "rec-1", DeviceID: "watch-1"}}
	stored := []models.Measurement{
		{RecordID: "rec-1", RemoteModifiedAt: tsPtr(100)},
		{RecordID: "rec-2", RemoteModifiedAt: tsPtr(200)},
	}

	mockRepo.EXPECT().UpsertMeasurements(ctx, incoming[0]).Return(nil)
	mockRepo.EXPECT().ListModifiedSince(ctx, time.Time{}).Return(stored, nil)

	resp, err := svc.Exchange(ctx, models.ExchangeRequest{
		DeviceID:     "watch-1",
		Measurements: incoming,
		Length:       len(incoming),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Measurements, 2)
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, tsPtr(200).Format(time.RFC3339Nano), resp.Cursor, "cursor advances to the newest returned record")
}

func TestExchangeService_DeltaExchangeUsesCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestExchangeSvc(t, ctrl, 0)
	ctx := context.Background()

	since := time.Unix(150, 0).UTC()
	mockRepo.EXPECT().ListModifiedSince(ctx, since).Return(nil, nil)

	resp, err := svc.Exchange(ctx, models.ExchangeRequest{
		DeviceID: "watch-1",
		Cursor:   since.Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Measurements)
	assert.Equal(t, since.Format(time.RFC3339Nano), resp.Cursor, "an empty delta keeps the caller's position")
}

func TestExchangeService_MalformedCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestExchangeSvc(t, ctrl, 0)

	_, err := svc.Exchange(context.Background(), models.ExchangeRequest{
		DeviceID: "watch-1",
		Cursor:   "not-a-timestamp",
	})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestExchangeService_QuotaEnforcement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestExchangeSvc(t, ctrl, 10)
	ctx := context.Background()

	incoming := []models.Measurement{
		{RecordID: "rec-1", DeviceID: "watch-1"},
		{RecordID: "rec-2", DeviceID: "watch-1"},
	}

	mockRepo.EXPECT().CountLive(ctx, "watch-1").Return(int64(9), nil)

	_, err := svc.Exchange(ctx, models.ExchangeRequest{
		DeviceID:     "watch-1",
		Measurements: incoming,
		Length:       len(incoming),
	})
	assert.ErrorIs(t, err, ErrDeviceQuotaExceeded)
}

func TestExchangeService_TombstonesBypassQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestExchangeSvc(t, ctrl, 1)
	ctx := context.Background()

	tombstone := models.Measurement{RecordID: "rec-1", DeviceID: "watch-1", Deleted: true}

	// No CountLive expectation: deletions never count against the quota.
	mockRepo.EXPECT().UpsertMeasurements(ctx, tombstone).Return(nil)
	mockRepo.EXPECT().ListModifiedSince(ctx, time.Time{}).Return(nil, nil)

	_, err := svc.Exchange(ctx, models.ExchangeRequest{
		DeviceID:     "watch-1",
		Measurements: []models.Measurement{tombstone},
		Length:       1,
	})
	require.NoError(t, err)
}

func TestExchangeService_EmptyBatchSkipsUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestExchangeSvc(t, ctrl, 10)
	ctx := context.Background()

	mockRepo.EXPECT().ListModifiedSince(ctx, time.Time{}).Return(nil, nil)

	resp, err := svc.Exchange(ctx, models.ExchangeRequest{DeviceID: "watch-1"})
	require.NoError(t, err)
	assert.Equal(t, "", resp.Cursor, "nothing stored yet, the caller starts from the beginning next time")
}
