package service

import (
	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/store"
)

// Services bundles the hub-side service layer.
type Services struct {
	DeviceService   DeviceService
	ExchangeService ExchangeService
}

func NewServices(storages *store.Storages, cfg *config.HubConfig, logger *logger.Logger) *Services {
	return &Services{
		DeviceService:   NewDeviceService(storages.Devices, cfg.Auth, logger),
		ExchangeService: NewExchangeService(storages.Measurements, cfg.DeviceQuota, logger),
	}
}
