package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/models"
)

type deviceRepository struct {
	*DB
	logger *logger.Logger
}

func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *deviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := d.DB.QueryRowContext(ctx, createDevice, device.DeviceID, device.Name, device.SecretHash)

	var created models.Device
	err := row.Scan(&created.ID, &created.DeviceID, &created.Name, &created.SecretHash, &created.CreatedAt)
	if err != nil {
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			return models.Device{}, ErrDeviceAlreadyExists
		}
		log.Err(err).
			Str("func", "deviceRepository.CreateDevice").
			Str("device_id", device.DeviceID).
			Msg("failed to insert device")
		return models.Device{}, fmt.Errorf("failed to create device (device_id=%s): %w", device.DeviceID, err)
	}

	return created, nil
}

func (d *deviceRepository) FindDevice(ctx context.Context, deviceID string) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := d.DB.QueryRowContext(ctx, findDeviceByDeviceID, deviceID)

	var device models.Device
	err := row.Scan(&device.ID, &device.DeviceID, &device.Name, &device.SecretHash, &device.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}
		log.Err(err).
			Str("func", "deviceRepository.FindDevice").
			Str("device_id", deviceID).
			Msg("failed to scan device row")
		return models.Device{}, fmt.Errorf("failed to find device (device_id=%s): %w", deviceID, err)
	}

	return device, nil
}
