package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/models"
)

type httpRemoteSyncEngine struct {
	client *resty.Client
	logger *logger.Logger

	deviceID     string
	deviceSecret string

	mu     sync.RWMutex
	token  string
	cursor string
}

// NewHTTPRemoteSyncEngine constructs the hub-backed remote sync engine. The
// engine authenticates lazily: the first call needing a session logs the
// device in (registering it on first contact) and caches the session token
// until Reset or a signed-out response.
func NewHTTPRemoteSyncEngine(cfg config.TrackerAdapter, device config.TrackerDevice, log *logger.Logger) RemoteSyncEngine {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HubAddress, "/")).
		SetTimeout(timeout)

	return &httpRemoteSyncEngine{
		client:       cli,
		logger:       log,
		deviceID:     device.ID,
		deviceSecret: device.Secret,
	}
}

func (h *httpRemoteSyncEngine) Sync(ctx context.Context, local []models.Measurement) ([]models.Measurement, error) {
	// Full exchange: empty cursor asks the hub for its complete record set.
	resp, err := h.exchange(ctx, local, "")
	if err != nil {
		return nil, err
	}

	h.setCursor(resp.Cursor)
	return resp.Measurements, nil
}

func (h *httpRemoteSyncEngine) Push(ctx context.Context, measurements []models.Measurement) error {
	if len(measurements) == 0 {
		return nil
	}

	resp, err := h.exchange(ctx, measurements, h.getCursor())
	if err != nil {
		return err
	}

	h.setCursor(resp.Cursor)
	return nil
}

func (h *httpRemoteSyncEngine) PerformBackgroundSync(ctx context.Context, pending []models.Measurement) ([]models.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := h.exchange(ctx, pending, h.getCursor())
	if err != nil {
		return nil, err
	}

	// The execution window may have expired while the round trip was in
	// flight; do not advance the cursor for a cancelled exchange.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.setCursor(resp.Cursor)
	return resp.Measurements, nil
}

func (h *httpRemoteSyncEngine) CheckAccountStatus(ctx context.Context) (models.AccountStatus, error) {
	if err := h.ensureSession(ctx); err != nil {
		switch {
		case errors.Is(err, ErrSignedOut):
			return models.AccountNoAccount, nil
		case errors.Is(err, ErrNoConnectivity):
			return models.AccountUnknown, err
		}
		return models.AccountUnknown, err
	}

	var status models.AccountStatusResponse
	resp, err := h.execute(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetResult(&status).
			Get("/api/account/status")
	})
	if err != nil {
		return models.AccountUnknown, err
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrSignedOut) {
			h.clearToken()
			return models.AccountNoAccount, nil
		}
		return models.AccountUnknown, err
	}

	return status.Status, nil
}

func (h *httpRemoteSyncEngine) SetupChangeNotifications(ctx context.Context) error {
	if err := h.ensureSession(ctx); err != nil {
		return err
	}

	resp, err := h.execute(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetBody(models.SubscribeRequest{DeviceID: h.deviceID}).
			Post("/api/sync/subscribe")
	})
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteSyncEngine) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
	h.cursor = ""
}

// exchange runs one authenticated round trip against the hub's exchange
// endpoint.
func (h *httpRemoteSyncEngine) exchange(ctx context.Context, measurements []models.Measurement, cursor string) (models.ExchangeResponse, error) {
	if err := h.ensureSession(ctx); err != nil {
		return models.ExchangeResponse{}, err
	}

	req := models.ExchangeRequest{
		DeviceID:     h.deviceID,
		Measurements: measurements,
		Cursor:       cursor,
		Length:       len(measurements),
	}

	var result models.ExchangeResponse
	resp, err := h.execute(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetBody(req).
			SetResult(&result).
			Post("/api/sync/exchange")
	})
	if err != nil {
		return models.ExchangeResponse{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrSignedOut) {
			h.clearToken()
		}
		return models.ExchangeResponse{}, err
	}

	return result, nil
}

// ensureSession logs the device in, registering it on first contact. The
// token is cached; concurrent callers may race to log in, which is harmless.
func (h *httpRemoteSyncEngine) ensureSession(ctx context.Context) error {
	if h.getToken() != "" {
		return nil
	}

	session, err := h.authenticate(ctx, "/api/device/login")
	if errors.Is(err, ErrRecordNotFound) {
		session, err = h.authenticate(ctx, "/api/device/register")
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.token = session.Token
	h.mu.Unlock()
	return nil
}

func (h *httpRemoteSyncEngine) authenticate(ctx context.Context, path string) (models.DeviceSession, error) {
	var session models.DeviceSession
	resp, err := h.execute(ctx, func() (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetBody(models.RegisterDeviceRequest{DeviceID: h.deviceID, Secret: h.deviceSecret}).
			SetResult(&session).
			Post(path)
	})
	if err != nil {
		return models.DeviceSession{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceSession{}, err
	}

	return session, nil
}

// execute runs one HTTP call with a short, bounded backoff for transport
// hiccups (connection failures, gateway errors). Anything that reaches the
// hub and gets a definitive answer is never retried here; higher-level
// retry policy belongs to the next natural sync trigger.
func (h *httpRemoteSyncEngine) execute(ctx context.Context, call func() (*resty.Response, error)) (*resty.Response, error) {
	var resp *resty.Response

	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error
		resp, callErr = call()
		if callErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return retry.RetryableError(fmt.Errorf("%w: %w", ErrNoConnectivity, callErr))
		}

		switch resp.StatusCode() {
		case http.StatusBadGateway, http.StatusGatewayTimeout:
			return retry.RetryableError(fmt.Errorf("%w: http %d", ErrNoConnectivity, resp.StatusCode()))
		}

		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	return resp, nil
}

func (h *httpRemoteSyncEngine) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.getToken())
}

func (h *httpRemoteSyncEngine) getToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteSyncEngine) clearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

func (h *httpRemoteSyncEngine) getCursor() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor
}

func (h *httpRemoteSyncEngine) setCursor(cursor string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor = cursor
}
