package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/models"
)

// fakeHub is a minimal in-memory hub used to exercise the HTTP engine.
type fakeHub struct {
	mu            sync.Mutex
	known         bool
	exchangeCalls int
	lastCursor    string
	pushed        []models.Measurement
	respond       []models.Measurement
	exchangeCode  int
}

func (f *fakeHub) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/device/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		known := f.known
		f.mu.Unlock()
		if !known {
			http.Error(w, "unknown device", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DeviceSession{DeviceID: "watch-1", Token: "session-token"})
	})

	mux.HandleFunc("/api/device/register", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.known = true
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DeviceSession{DeviceID: "watch-1", Token: "session-token"})
	})

	mux.HandleFunc("/api/sync/exchange", func(w http.ResponseWriter, r *http.Request) {
		var req models.ExchangeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		f.exchangeCalls++
		f.lastCursor = req.Cursor
		f.pushed = append(f.pushed, req.Measurements...)
		code := f.exchangeCode
		respond := f.respond
		f.mu.Unlock()

		if code != 0 {
			http.Error(w, "exchange refused", code)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ExchangeResponse{
			Measurements: respond,
			Cursor:       "cursor-1",
			Length:       len(respond),
		})
	})

	mux.HandleFunc("/api/account/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AccountStatusResponse{Status: models.AccountAvailable})
	})

	mux.HandleFunc("/api/sync/subscribe", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func newTestEngine(t *testing.T, hub *fakeHub) (RemoteSyncEngine, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(hub.handler())
	t.Cleanup(srv.Close)

	engine := NewHTTPRemoteSyncEngine(
		config.TrackerAdapter{HubAddress: srv.URL, RequestTimeout: 5 * time.Second},
		config.TrackerDevice{ID: "watch-1", Secret: "secret"},
		logger.Nop(),
	)
	return engine, srv
}

func TestHTTPEngine_Sync_RegistersAndExchanges(t *testing.T) {
	hub := &fakeHub{respond: []models.Measurement{{RecordID: "rec-1", DeviceID: "phone-1"}}}
	engine, _ := newTestEngine(t, hub)

	got, err := engine.Sync(context.Background(), []models.Measurement{{RecordID: "rec-local"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rec-1", got[0].RecordID)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.True(t, hub.known, "device should self-register on first contact")
	assert.Equal(t, "", hub.lastCursor, "full sync sends an empty cursor")
	require.Len(t, hub.pushed, 1)
	assert.Equal(t, "rec-local", hub.pushed[0].RecordID)
}

func TestHTTPEngine_BackgroundSync_UsesCursor(t *testing.T) {
	hub := &fakeHub{}
	engine, _ := newTestEngine(t, hub)

	_, err := engine.Sync(context.Background(), nil)
	require.NoError(t, err)

	_, err = engine.PerformBackgroundSync(context.Background(), nil)
	require.NoError(t, err)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Equal(t, "cursor-1", hub.lastCursor, "delta sync reuses the cursor from the previous exchange")
}

func TestHTTPEngine_Reset_ClearsCursor(t *testing.T) {
	hub := &fakeHub{}
	engine, _ := newTestEngine(t, hub)

	_, err := engine.Sync(context.Background(), nil)
	require.NoError(t, err)

	engine.Reset()

	_, err = engine.PerformBackgroundSync(context.Background(), nil)
	require.NoError(t, err)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Equal(t, "", hub.lastCursor, "reset must clear the exchange cursor")
}

func TestHTTPEngine_TypedFailures(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr error
	}{
		{"quota exceeded", http.StatusInsufficientStorage, ErrQuotaExceeded},
		{"service disabled", http.StatusServiceUnavailable, ErrServiceDisabled},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"signed out", http.StatusUnauthorized, ErrSignedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := &fakeHub{exchangeCode: tt.code}
			engine, _ := newTestEngine(t, hub)

			_, err := engine.Sync(context.Background(), nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPEngine_CheckAccountStatus(t *testing.T) {
	hub := &fakeHub{}
	engine, _ := newTestEngine(t, hub)

	status, err := engine.CheckAccountStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AccountAvailable, status)
}

func TestHTTPEngine_CheckAccountStatus_NoConnectivity(t *testing.T) {
	hub := &fakeHub{}
	engine, srv := newTestEngine(t, hub)
	srv.Close()

	status, err := engine.CheckAccountStatus(context.Background())
	assert.ErrorIs(t, err, ErrNoConnectivity)
	assert.Equal(t, models.AccountUnknown, status)
}

func TestHTTPEngine_BackgroundSync_ObservesCancellation(t *testing.T) {
	hub := &fakeHub{}
	engine, _ := newTestEngine(t, hub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.PerformBackgroundSync(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Zero(t, hub.exchangeCalls, "cancelled exchange must not reach the hub")
}

func TestHTTPEngine_SetupChangeNotifications(t *testing.T) {
	hub := &fakeHub{}
	engine, _ := newTestEngine(t, hub)

	assert.NoError(t, engine.SetupChangeNotifications(context.Background()))
}
