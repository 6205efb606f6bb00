package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/models"
)

type hubMeasurementRepository struct {
	*DB
	logger *logger.Logger
}

func NewHubMeasurementRepository(db *DB, logger *logger.Logger) HubMeasurementRepository {
	return &hubMeasurementRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertMeasurements writes the batch inside one transaction; the hub stamps
// modified_at itself so devices cannot forge modification order.
func (h *hubMeasurementRepository) UpsertMeasurements(ctx context.Context, measurements ...models.Measurement) error {
	log := logger.FromContext(ctx)

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "hubMeasurementRepository.UpsertMeasurements").
			Msg("failed to begin upsert transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, item := range measurements {
		confidence, encErr := marshalConfidence(item.Confidence)
		if encErr != nil {
			return fmt.Errorf("failed to encode confidence (record_id=%s): %w", item.RecordID, encErr)
		}

		if _, err = tx.ExecContext(ctx, upsertHubMeasurement,
			item.RecordID,
			item.DeviceID,
			item.TakenAt,
			item.Score,
			item.HeartRate,
			item.HRV,
			item.Category,
			confidence,
			item.Deleted,
		); err != nil {
			log.Err(err).
				Str("func", "hubMeasurementRepository.UpsertMeasurements").
				Str("record_id", item.RecordID).
				Msg("failed to execute upsert for measurement")
			return fmt.Errorf("%w: upsert %s: %w", ErrExecutingStatement, item.RecordID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (h *hubMeasurementRepository) ListModifiedSince(ctx context.Context, since time.Time) ([]models.Measurement, error) {
	log := logger.FromContext(ctx)

	rows, err := h.DB.QueryContext(ctx, listMeasurementsModifiedSince, since)
	if err != nil {
		log.Err(err).
			Str("func", "hubMeasurementRepository.ListModifiedSince").
			Time("since", since).
			Msg("failed to execute measurement query")
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	var items []models.Measurement
	for rows.Next() {
		var (
			item       models.Measurement
			confidence string
			modifiedAt time.Time
		)

		scanErr := rows.Scan(
			&item.RecordID,
			&item.DeviceID,
			&item.TakenAt,
			&item.Score,
			&item.HeartRate,
			&item.HRV,
			&item.Category,
			&confidence,
			&item.Deleted,
			&modifiedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "hubMeasurementRepository.ListModifiedSince").
				Msg("failed to scan measurement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		if item.Confidence, scanErr = unmarshalConfidence(confidence); scanErr != nil {
			return nil, fmt.Errorf("failed to decode confidence: %w", scanErr)
		}
		item.RemoteModifiedAt = &modifiedAt

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "hubMeasurementRepository.ListModifiedSince").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating measurement rows: %w", rowsErr)
	}

	return items, nil
}

func (h *hubMeasurementRepository) CountLive(ctx context.Context, deviceID string) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := h.DB.QueryRowContext(ctx, countLiveMeasurements, deviceID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "hubMeasurementRepository.CountLive").
			Str("device_id", deviceID).
			Msg("failed to count live measurements")
		return 0, fmt.Errorf("failed to count live measurements (device_id=%s): %w", deviceID, err)
	}

	return count, nil
}
