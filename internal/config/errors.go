package config

import "errors"

// Validation errors returned by the per-binary config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid hub server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAuthConfigs indicates incomplete token settings
	// (missing sign key, issuer or duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidAdapterConfigs indicates invalid tracker adapter settings
	// (for example, a missing hub address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidDeviceConfigs indicates a missing device identity.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")

	// ErrInvalidSyncConfigs indicates an unknown conflict-resolution
	// strategy.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
