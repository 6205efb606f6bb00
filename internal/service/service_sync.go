package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/models"
)

// exchangeService is the concrete implementation of ExchangeService.
type exchangeService struct {
	measurements store.HubMeasurementRepository

	// deviceQuota caps live records per device; zero disables the check.
	deviceQuota int64

	logger *logger.Logger
}

// NewExchangeService constructs the hub half of the sync protocol.
func NewExchangeService(measurements store.HubMeasurementRepository, deviceQuota int64, log *logger.Logger) ExchangeService {
	return &exchangeService{
		measurements: measurements,
		deviceQuota:  deviceQuota,
		logger:       log,
	}
}

// Exchange implements ExchangeService.
//
// One round trip does both halves of a sync: the device's dirty records are
// upserted (tombstones included), then every record whose hub modification
// timestamp is strictly after the caller's cursor is returned along with the
// next cursor. An empty cursor means the device wants the full record set.
//
// Returns ErrDeviceQuotaExceeded before accepting writes that would push the
// device past its live-record quota, and ErrInvalidCursor for a cursor that
// does not parse.
func (s *exchangeService) Exchange(ctx context.Context, req models.ExchangeRequest) (models.ExchangeResponse, error) {
	log := logger.FromContext(ctx)

	since, err := parseCursor(req.Cursor)
	if err != nil {
		log.Error().Str("cursor", req.Cursor).Msg("malformed exchange cursor")
		return models.ExchangeResponse{}, err
	}

	if err = s.checkQuota(ctx, req); err != nil {
		return models.ExchangeResponse{}, err
	}

	if len(req.Measurements) > 0 {
		if err = s.measurements.UpsertMeasurements(ctx, req.Measurements...); err != nil {
			log.Err(err).Int("records", len(req.Measurements)).Msg("measurement upsert failed")
			return models.ExchangeResponse{}, fmt.Errorf("upsert device records: %w", err)
		}
	}

	changed, err := s.measurements.ListModifiedSince(ctx, since)
	if err != nil {
		log.Err(err).Time("since", since).Msg("listing changed records failed")
		return models.ExchangeResponse{}, fmt.Errorf("list changed records: %w", err)
	}

	return models.ExchangeResponse{
		Measurements: changed,
		Cursor:       nextCursor(since, changed),
		Length:       len(changed),
	}, nil
}

// checkQuota rejects the batch when accepting its live inserts could push
// the device past its quota. Tombstones never count against the quota.
func (s *exchangeService) checkQuota(ctx context.Context, req models.ExchangeRequest) error {
	if s.deviceQuota <= 0 {
		return nil
	}

	var incoming int64
	for _, m := range req.Measurements {
		if !m.Deleted {
			incoming++
		}
	}
	if incoming == 0 {
		return nil
	}

	live, err := s.measurements.CountLive(ctx, req.DeviceID)
	if err != nil {
		return fmt.Errorf("count live records: %w", err)
	}
	if live+incoming > s.deviceQuota {
		return fmt.Errorf("%w: %d live + %d incoming > quota %d", ErrDeviceQuotaExceeded, live, incoming, s.deviceQuota)
	}

	return nil
}

// parseCursor decodes the change cursor: empty means "from the beginning",
// otherwise an RFC 3339 timestamp with nanoseconds.
func parseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}
	since, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	return since, nil
}

// nextCursor is the hub modification timestamp of the newest returned
// record; when nothing changed the caller's position is handed back
// unchanged.
func nextCursor(since time.Time, changed []models.Measurement) string {
	newest := since
	for _, m := range changed {
		if m.ModifiedAt().After(newest) {
			newest = m.ModifiedAt()
		}
	}
	if newest.IsZero() {
		return ""
	}
	return newest.Format(time.RFC3339Nano)
}
