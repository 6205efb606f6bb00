package config

import (
	"fmt"
	"time"
)

// HubAuth holds token-issuing settings for the hub.
type HubAuth struct {
	// TokenSignKey signs device session tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the session token lifetime.
	TokenDuration time.Duration
}

// HubStorage holds the hub's database settings.
type HubStorage struct {
	// DSN is the Postgres connection string.
	DSN string
}

// HubServer holds the hub's HTTP server settings.
type HubServer struct {
	// HTTPAddress is the listen address, "host:port".
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// HubConfig is the hub binary's configuration view assembled from
// [StructuredConfig].
type HubConfig struct {
	Auth    HubAuth
	Storage HubStorage
	Server  HubServer

	// DeviceQuota limits live records per device; zero disables the quota.
	DeviceQuota int64
}

// GetHubConfig builds and validates the hub-specific config view from the
// merged structured configuration, applying defaults for optional fields.
func GetHubConfig() (*HubConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading structured config: %w", err)
	}

	cfg := &HubConfig{
		Auth: HubAuth{
			TokenSignKey:  structured.App.TokenSignKey,
			TokenIssuer:   structured.App.TokenIssuer,
			TokenDuration: structured.App.TokenDuration,
		},
		Storage: HubStorage{
			DSN: structured.Storage.DB.DSN,
		},
		Server: HubServer{
			HTTPAddress:    structured.Server.HTTPAddress,
			RequestTimeout: structured.Server.RequestTimeout,
		},
		DeviceQuota: structured.App.DeviceQuota,
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *HubConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = "localhost:8080"
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = "pulse-hub"
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = 24 * time.Hour
	}
}

func (c *HubConfig) validate() error {
	if c.Storage.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if c.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAuthConfigs)
	}

	return nil
}
