package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/models"
)

type localMeasurementRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalMeasurementRepository(db *DB, logger *logger.Logger) LocalMeasurementRepository {
	return &localMeasurementRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localMeasurementRepository) Save(ctx context.Context, measurements ...models.Measurement) error {
	log := logger.FromContext(ctx)

	for _, item := range measurements {
		confidence, err := marshalConfidence(item.Confidence)
		if err != nil {
			return fmt.Errorf("failed to encode confidence (record_id=%s): %w", item.RecordID, err)
		}

		_, err = l.DB.ExecContext(ctx, upsertMeasurement,
			item.RecordID,
			item.DeviceID,
			item.TakenAt,
			item.Score,
			item.HeartRate,
			item.HRV,
			item.Category,
			confidence,
			item.Deleted,
			item.PendingUpload,
			item.RemoteModifiedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localMeasurementRepository.Save").
				Str("record_id", item.RecordID).
				Msg("failed to execute upsert for measurement")
			return fmt.Errorf("failed to save measurement (record_id=%s): %w", item.RecordID, err)
		}
	}

	return nil
}

func (l *localMeasurementRepository) Get(ctx context.Context, recordID string) (models.Measurement, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getSingleMeasurement, recordID)

	item, err := scanMeasurement(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Measurement{}, ErrMeasurementNotFound
		}
		log.Err(err).
			Str("func", "localMeasurementRepository.Get").
			Str("record_id", recordID).
			Msg("failed to scan measurement row")
		return models.Measurement{}, fmt.Errorf("failed to scan measurement row: %w", err)
	}

	return item, nil
}

func (l *localMeasurementRepository) GetAll(ctx context.Context, includeDeleted bool) ([]models.Measurement, error) {
	query := getAllMeasurements
	if includeDeleted {
		query = getAllMeasurementsWithDeleted
	}

	return l.queryMeasurements(ctx, "localMeasurementRepository.GetAll", query)
}

func (l *localMeasurementRepository) Fetch(ctx context.Context, filter MeasurementFilter) ([]models.Measurement, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"record_id", "device_id", "taken_at", "score", "heart_rate", "hrv",
		"category", "confidence", "deleted", "pending_upload", "remote_modified_at",
	).From("measurements").PlaceholderFormat(sq.Dollar)

	if len(filter.RecordIDs) > 0 {
		builder = builder.Where(sq.Eq{"record_id": filter.RecordIDs})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"taken_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"taken_at": *filter.To})
	}
	if len(filter.Categories) > 0 {
		builder = builder.Where(sq.Eq{"category": filter.Categories})
	}
	if !filter.IncludeDeleted {
		builder = builder.Where(sq.Eq{"deleted": false})
	}

	query, args, err := builder.OrderBy("taken_at").ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "localMeasurementRepository.Fetch").
			Msg("failed to build fetch query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.queryMeasurements(ctx, "localMeasurementRepository.Fetch", query, args...)
}

func (l *localMeasurementRepository) GetPendingUpload(ctx context.Context) ([]models.Measurement, error) {
	return l.queryMeasurements(ctx, "localMeasurementRepository.GetPendingUpload", getPendingUploadMeasurements)
}

func (l *localMeasurementRepository) ClearPendingUpload(ctx context.Context, recordIDs ...string) error {
	log := logger.FromContext(ctx)

	for _, recordID := range recordIDs {
		if _, err := l.DB.ExecContext(ctx, clearPendingUpload, recordID); err != nil {
			log.Err(err).
				Str("func", "localMeasurementRepository.ClearPendingUpload").
				Str("record_id", recordID).
				Msg("failed to clear pending upload flag")
			return fmt.Errorf("failed to clear pending upload (record_id=%s): %w", recordID, err)
		}
	}

	return nil
}

func (l *localMeasurementRepository) SoftDelete(ctx context.Context, recordID string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, softDeleteMeasurement, recordID)
	if err != nil {
		log.Err(err).
			Str("func", "localMeasurementRepository.SoftDelete").
			Str("record_id", recordID).
			Msg("failed to execute soft delete for measurement")
		return fmt.Errorf("failed to soft delete measurement (record_id=%s): %w", recordID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (record_id=%s): %w", recordID, err)
	}
	if affected == 0 {
		return ErrMeasurementNotFound
	}

	return nil
}

func (l *localMeasurementRepository) Delete(ctx context.Context, recordID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteMeasurement, recordID); err != nil {
		log.Err(err).
			Str("func", "localMeasurementRepository.Delete").
			Str("record_id", recordID).
			Msg("failed to execute delete for measurement")
		return fmt.Errorf("failed to delete measurement (record_id=%s): %w", recordID, err)
	}

	return nil
}

func (l *localMeasurementRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteAllMeasurements); err != nil {
		log.Err(err).
			Str("func", "localMeasurementRepository.DeleteAll").
			Msg("failed to empty measurement store")
		return fmt.Errorf("failed to delete all measurements: %w", err)
	}

	return nil
}

// ApplyResolutions applies one sync pass's decisions inside a single
// transaction so a crash mid-pass never leaves the store half reconciled.
func (l *localMeasurementRepository) ApplyResolutions(ctx context.Context, decisions []models.Resolution) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localMeasurementRepository.ApplyResolutions").
			Msg("failed to begin resolution transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, decision := range decisions {
		if err = ctx.Err(); err != nil {
			return err
		}

		switch decision.Outcome {
		case models.OutcomeDelete:
			if _, err = tx.ExecContext(ctx, deleteMeasurement, decision.RecordID); err != nil {
				return fmt.Errorf("%w: delete %s: %w", ErrExecutingStatement, decision.RecordID, err)
			}

		case models.OutcomeKeepLocal:
			if _, err = tx.ExecContext(ctx, markPendingUpload, decision.RecordID); err != nil {
				return fmt.Errorf("%w: mark pending %s: %w", ErrExecutingStatement, decision.RecordID, err)
			}

		case models.OutcomeKeepRemote, models.OutcomeMerge:
			if decision.Winner == nil {
				return fmt.Errorf("%w: decision for %s has no surviving record", ErrExecutingStatement, decision.RecordID)
			}
			winner := *decision.Winner
			winner.PendingUpload = decision.NeedsUpload

			confidence, encErr := marshalConfidence(winner.Confidence)
			if encErr != nil {
				return fmt.Errorf("failed to encode confidence (record_id=%s): %w", winner.RecordID, encErr)
			}

			if _, err = tx.ExecContext(ctx, upsertMeasurement,
				winner.RecordID,
				winner.DeviceID,
				winner.TakenAt,
				winner.Score,
				winner.HeartRate,
				winner.HRV,
				winner.Category,
				confidence,
				winner.Deleted,
				winner.PendingUpload,
				winner.RemoteModifiedAt,
			); err != nil {
				return fmt.Errorf("%w: upsert %s: %w", ErrExecutingStatement, winner.RecordID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localMeasurementRepository.ApplyResolutions").
			Msg("failed to commit resolution transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localMeasurementRepository) queryMeasurements(ctx context.Context, caller, query string, args ...any) ([]models.Measurement, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute measurement query")
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	var items []models.Measurement
	for rows.Next() {
		item, scanErr := scanMeasurement(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan measurement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating measurement rows: %w", rowsErr)
	}

	return items, nil
}

// scanMeasurement reads one measurement row through the given scan function,
// decoding the JSON confidence column and the nullable remote timestamp.
func scanMeasurement(scan func(...any) error) (models.Measurement, error) {
	var (
		item       models.Measurement
		confidence string
		modifiedAt sql.NullTime
	)

	err := scan(
		&item.RecordID,
		&item.DeviceID,
		&item.TakenAt,
		&item.Score,
		&item.HeartRate,
		&item.HRV,
		&item.Category,
		&confidence,
		&item.Deleted,
		&item.PendingUpload,
		&modifiedAt,
	)
	if err != nil {
		return models.Measurement{}, err
	}

	if item.Confidence, err = unmarshalConfidence(confidence); err != nil {
		return models.Measurement{}, fmt.Errorf("failed to decode confidence: %w", err)
	}
	if modifiedAt.Valid {
		t := modifiedAt.Time
		item.RemoteModifiedAt = &t
	}

	return item, nil
}

func marshalConfidence(values []float64) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}

	payload, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func unmarshalConfidence(payload string) ([]float64, error) {
	if payload == "" || payload == "[]" {
		return nil, nil
	}

	var values []float64
	if err := json.Unmarshal([]byte(payload), &values); err != nil {
		return nil, err
	}
	return values, nil
}
