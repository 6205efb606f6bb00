package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/service"
	"github.com/MKhiriev/pulse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer session-token")
	return req
}

func TestExchange(t *testing.T) {
	h, devices, exchange := newTestHandler(t)

	devices.EXPECT().ParseToken(gomock.Any(), "session-token").Return("watch-1", nil)

	remote := models.Measurement{RecordID: "rec-1", DeviceID: "phone-2", Score: 61.5}
	exchange.EXPECT().
		Exchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.ExchangeRequest) (models.ExchangeResponse, error) {
			// the payload identity is overridden by the token subject
			assert.Equal(t, "watch-1", req.DeviceID)
			return models.ExchangeResponse{
				Measurements: []models.Measurement{remote},
				Cursor:       time.Now().UTC().Format(time.RFC3339Nano),
				Length:       1,
			}, nil
		})

	body, err := json.Marshal(models.ExchangeRequest{
		DeviceID:     "spoofed-id",
		Measurements: []models.Measurement{{RecordID: "rec-9", DeviceID: "watch-1"}},
		Length:       1,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/sync/exchange", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExchangeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Measurements, 1)
	assert.Equal(t, "rec-1", resp.Measurements[0].RecordID)
	assert.NotEmpty(t, resp.Cursor)
}

func TestExchange_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{name: "quota exceeded", serviceErr: service.ErrDeviceQuotaExceeded, wantCode: http.StatusInsufficientStorage},
		{name: "malformed cursor", serviceErr: service.ErrInvalidCursor, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, devices, exchange := newTestHandler(t)

			devices.EXPECT().ParseToken(gomock.Any(), "session-token").Return("watch-1", nil)
			exchange.EXPECT().Exchange(gomock.Any(), gomock.Any()).Return(models.ExchangeResponse{}, tt.serviceErr)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/sync/exchange", []byte(`{"length":0}`)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestExchange_RejectsMissingToken(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sync/exchange",
		bytes.NewBufferString(`{"length":0}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExchange_RejectsInvalidToken(t *testing.T) {
	h, devices, _ := newTestHandler(t)

	devices.EXPECT().
		ParseToken(gomock.Any(), "session-token").
		Return("", service.ErrTokenIsExpiredOrInvalid)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/sync/exchange", []byte(`{"length":0}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExchange_GZippedRequestBody(t *testing.T) {
	h, devices, exchange := newTestHandler(t)

	devices.EXPECT().ParseToken(gomock.Any(), "session-token").Return("watch-1", nil)
	exchange.EXPECT().
		Exchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.ExchangeRequest) (models.ExchangeResponse, error) {
			assert.Equal(t, 2, req.Length)
			return models.ExchangeResponse{Cursor: req.Cursor}, nil
		})

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(`{"length":2,"cursor":"2026-01-02T03:04:05Z"}`))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	req := authedRequest(t, http.MethodPost, "/api/sync/exchange", buf.Bytes())
	req.Header.Set("Content-Encoding", "gzip")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountStatus(t *testing.T) {
	h, devices, _ := newTestHandler(t)

	devices.EXPECT().ParseToken(gomock.Any(), "session-token").Return("watch-1", nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/account/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AccountStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.AccountAvailable, resp.Status)
}

func TestSubscribe(t *testing.T) {
	h, devices, _ := newTestHandler(t)

	devices.EXPECT().ParseToken(gomock.Any(), "session-token").Return("watch-1", nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/sync/subscribe",
		[]byte(`{"device_id":"watch-1","endpoint":"apns://token"}`)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
