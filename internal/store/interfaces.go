package store

import (
	"context"
	"time"

	"github.com/MKhiriev/pulse-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeviceRepository is the hub's registry of known devices.
type DeviceRepository interface {
	// CreateDevice registers a new device. Returns ErrDeviceAlreadyExists
	// if the device identifier is taken.
	CreateDevice(ctx context.Context, device models.Device) (models.Device, error)

	// FindDevice looks a device up by its stable identifier. Returns
	// ErrDeviceNotFound for unknown identifiers.
	FindDevice(ctx context.Context, deviceID string) (models.Device, error)
}

// HubMeasurementRepository is the hub's authoritative measurement store.
type HubMeasurementRepository interface {
	// UpsertMeasurements stores the given records, stamping each accepted
	// write with the hub's modification timestamp.
	UpsertMeasurements(ctx context.Context, measurements ...models.Measurement) error

	// ListModifiedSince returns every record whose hub modification
	// timestamp is strictly after since, oldest first. A zero since returns
	// the full record set.
	ListModifiedSince(ctx context.Context, since time.Time) ([]models.Measurement, error)

	// CountLive returns the number of non-tombstoned records owned by the
	// given device. Used for quota enforcement.
	CountLive(ctx context.Context, deviceID string) (int64, error)
}
