// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/mock"
	"github.com/MKhiriev/pulse-keeper/internal/service"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/internal/utils"
	"github.com/MKhiriev/pulse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockDeviceService, *mock.MockExchangeService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	devices := mock.NewMockDeviceService(ctrl)
	exchange := mock.NewMockExchangeService(ctrl)

	h := NewHandler(&service.Services{
		DeviceService:   devices,
		ExchangeService: exchange,
	}, logger.Nop())

	return h, devices, exchange
}

func sessionToken(t *testing.T, deviceID string) models.Token {
	t.Helper()

	token, err := utils.GenerateDeviceToken("pulse-keeper-hub", deviceID, time.Hour, "test-sign-key")
	require.NoError(t, err)

	return token
}

func TestRegisterDevice(t *testing.T) {
	h, devices, _ := newTestHandler(t)

	req := models.RegisterDeviceRequest{DeviceID: "watch-1", Secret: "s3cret", Name: "watch"}
	device := models.Device{ID: 1, DeviceID: "watch-1", Name: "watch"}
	token := sessionToken(t, "watch-1")

	devices.EXPECT().RegisterDevice(gomock.Any(), req).Return(device, nil)
	devices.EXPECT().CreateToken(gomock.Any(), device).Return(token, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/device/register", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var session models.DeviceSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "watch-1", session.DeviceID)
	assert.Equal(t, token.SignedString, session.Token)
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestRegisterDevice_Conflict(t *testing.T) {
	h, devices, _ := newTestHandler(t)

	devices.EXPECT().
		RegisterDevice(gomock.Any(), gomock.Any()).
		Return(models.Device{}, store.ErrDeviceAlreadyExists)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/device/register",
		bytes.NewBufferString(`{"device_id":"watch-1","secret":"s3cret"}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterDevice_MalformedBody(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/device/register",
		bytes.NewBufferString(`not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginDevice(t *testing.T) {
	h, devices, _ := newTestHandler(t)

	device := models.Device{ID: 7, DeviceID: "phone-2"}
	token := sessionToken(t, "phone-2")

	devices.EXPECT().Login(gomock.Any(), gomock.Any()).Return(device, nil)
	devices.EXPECT().CreateToken(gomock.Any(), device).Return(token, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/device/login",
		bytes.NewBufferString(`{"device_id":"phone-2","secret":"s3cret"}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var session models.DeviceSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "phone-2", session.DeviceID)
}

func TestLoginDevice_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{name: "wrong secret", serviceErr: service.ErrWrongSecret, wantCode: http.StatusUnauthorized},
		{name: "unknown device", serviceErr: store.ErrDeviceNotFound, wantCode: http.StatusNotFound},
		{name: "storage failure", serviceErr: store.ErrExecutingStatement, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, devices, _ := newTestHandler(t)

			devices.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Device{}, tt.serviceErr)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/device/login",
				bytes.NewBufferString(`{"device_id":"watch-1","secret":"nope"}`)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestWrongMethodAnswers404(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/device/register", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
