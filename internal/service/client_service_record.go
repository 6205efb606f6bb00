package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/internal/utils"
	"github.com/MKhiriev/pulse-keeper/models"
)

type recordingService struct {
	localStore store.LocalMeasurementRepository
	source     SampleSource
	calculator ScoreCalculator
	uuid       *utils.UUIDGenerator
	deviceID   string
	logger     *logger.Logger
}

// NewRecordingService constructs the measurement write path. Every record it
// creates is stamped with deviceID and flagged for upload.
func NewRecordingService(
	localStore store.LocalMeasurementRepository,
	source SampleSource,
	calculator ScoreCalculator,
	deviceID string,
	log *logger.Logger,
) RecordingService {
	return &recordingService{
		localStore: localStore,
		source:     source,
		calculator: calculator,
		uuid:       utils.NewUUIDGenerator(),
		deviceID:   deviceID,
		logger:     log,
	}
}

func (s *recordingService) Record(ctx context.Context) (models.Measurement, error) {
	sample, err := s.source.Sample(ctx)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("read vital sample: %w", err)
	}

	score, category, confidence := s.calculator.Score(sample)

	measurement := models.Measurement{
		RecordID:      s.uuid.Generate(),
		DeviceID:      s.deviceID,
		TakenAt:       sample.TakenAt,
		Score:         score,
		HeartRate:     sample.HeartRate,
		HRV:           sample.HRV,
		Category:      category,
		Confidence:    confidence,
		PendingUpload: true,
	}

	if err = s.localStore.Save(ctx, measurement); err != nil {
		return models.Measurement{}, fmt.Errorf("save measurement: %w", err)
	}

	s.logger.Debug().
		Str("record_id", measurement.RecordID).
		Str("category", string(category)).
		Msg("measurement recorded")
	return measurement, nil
}

func (s *recordingService) Delete(ctx context.Context, recordID string) error {
	if recordID == "" {
		return ErrInvalidDataProvided
	}
	if err := s.localStore.SoftDelete(ctx, recordID); err != nil {
		return fmt.Errorf("tombstone measurement %s: %w", recordID, err)
	}
	return nil
}

// List reads fail soft: a broken local store must not take the reading
// history view down with it, so errors are logged and an empty slice is
// returned.
func (s *recordingService) List(ctx context.Context, filter store.MeasurementFilter) []models.Measurement {
	measurements, err := s.localStore.Fetch(ctx, filter)
	if err != nil {
		s.logger.Err(err).Msg("measurement fetch failed, returning empty result")
		return []models.Measurement{}
	}
	return measurements
}
