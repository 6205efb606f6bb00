package service

import (
	"context"

	"github.com/MKhiriev/pulse-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeviceService handles device registration and session tokens on the hub.
type DeviceService interface {
	// RegisterDevice creates a new device record with a hashed secret.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// Login verifies the device secret and returns the stored device.
	Login(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// CreateToken issues a signed session token for the device.
	CreateToken(ctx context.Context, device models.Device) (models.Token, error)

	// ParseToken validates a raw session token and returns the device
	// identifier it was issued to.
	ParseToken(ctx context.Context, tokenString string) (string, error)
}

// ExchangeService is the hub half of the sync protocol: it accepts a batch
// of device records and returns everything that changed since the caller's
// cursor.
type ExchangeService interface {
	Exchange(ctx context.Context, req models.ExchangeRequest) (models.ExchangeResponse, error)
}
