package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
)

// Storages bundles the hub's repositories and the shared database handle.
type Storages struct {
	DB           *DB
	Devices      DeviceRepository
	Measurements HubMeasurementRepository
}

// NewStorages connects to the hub database and wires the repositories.
func NewStorages(ctx context.Context, cfg config.HubStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return &Storages{
		DB:           db,
		Devices:      NewDeviceRepository(db, log),
		Measurements: NewHubMeasurementRepository(db, log),
	}, nil
}
