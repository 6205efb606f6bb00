package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
)

// TrackerStorages bundles the tracker's local repositories.
type TrackerStorages struct {
	DB           *DB
	Measurements LocalMeasurementRepository
}

// NewTrackerStorages opens the local SQLite store and wires the measurement
// repository.
func NewTrackerStorages(ctx context.Context, cfg config.TrackerStorage, log *logger.Logger) (*TrackerStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}

	return &TrackerStorages{
		DB:           db,
		Measurements: NewLocalMeasurementRepository(db, log),
	}, nil
}
