package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/mock"
	"github.com/MKhiriev/pulse-keeper/models"
)

func newTestDeviceSvc(t *testing.T, ctrl *gomock.Controller) (DeviceService, *mock.MockDeviceRepository) {
	t.Helper()
	mockRepo := mock.NewMockDeviceRepository(ctrl)
	svc := NewDeviceService(mockRepo, config.HubAuth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pulse-hub",
		TokenDuration: time.Hour,
	}, logger.Nop())
	return svc, mockRepo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDeviceSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateDevice(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, device models.Device) (models.Device, error) {
			assert.Equal(t, "watch-1", device.DeviceID)
			assert.NotEqual(t, "s3cret", device.SecretHash, "the secret must never be stored in the clear")
			assert.True(t, verifySecret("s3cret", device.SecretHash))
			device.ID = 1
			return device, nil
		})

	device, err := svc.RegisterDevice(ctx, models.RegisterDeviceRequest{
		DeviceID: "watch-1",
		Secret:   "s3cret",
		Name:     "left wrist",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), device.ID)
}

func TestDeviceService_RegisterDevice_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDeviceSvc(t, ctrl)

	_, err := svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{DeviceID: "watch-1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{Secret: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeviceService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestDeviceSvc(t, ctrl)
	ctx := context.Background()

	hash, err := hashSecret("s3cret")
	require.NoError(t, err)

	stored := models.Device{ID: 1, DeviceID: "watch-1", SecretHash: hash}
	mockRepo.EXPECT().FindDevice(ctx, "watch-1").Return(stored, nil).Times(2)

	device, err := svc.Login(ctx, models.RegisterDeviceRequest{DeviceID: "watch-1", Secret: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), device.ID)

	_, err = svc.Login(ctx, models.RegisterDeviceRequest{DeviceID: "watch-1", Secret: "wrong"})
	assert.ErrorIs(t, err, ErrWrongSecret)
}

func TestDeviceService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDeviceSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Device{DeviceID: "watch-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	deviceID, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "watch-1", deviceID)
}

func TestDeviceService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestDeviceSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestHashSecret_SaltsEveryHash(t *testing.T) {
	h1, err := hashSecret("s3cret")
	require.NoError(t, err)
	h2, err := hashSecret("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same secret must use different salts")
	assert.True(t, verifySecret("s3cret", h1))
	assert.True(t, verifySecret("s3cret", h2))
	assert.False(t, verifySecret("other", h1))
	assert.False(t, verifySecret("s3cret", "garbage"))
}
