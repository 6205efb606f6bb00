package config

import (
	"fmt"
	"time"
)

// Known conflict-resolution strategy names accepted by SYNC_STRATEGY.
var knownStrategies = map[string]struct{}{
	"timestamp":       {},
	"server":          {},
	"client":          {},
	"device_priority": {},
}

// TrackerAdapter holds network settings used by the tracker's hub adapter.
type TrackerAdapter struct {
	// HubAddress is the hub's base URL.
	HubAddress string
	// RequestTimeout is the default timeout for outbound hub requests.
	RequestTimeout time.Duration
}

// TrackerStorage holds the tracker's local store settings.
type TrackerStorage struct {
	// Path is the SQLite database file path, or ":memory:".
	Path string
}

// TrackerDevice identifies this tracker to the hub.
type TrackerDevice struct {
	ID      string
	Secret  string
	LogPath string
}

// TrackerSync holds sync-core settings.
type TrackerSync struct {
	// Interval is the periodic sync cadence.
	Interval time.Duration
	// Strategy names the conflict-resolution policy.
	Strategy string
	// DevicePriority ranks device identifiers, highest first.
	DevicePriority []string
}

// TrackerBackground holds background-execution settings.
type TrackerBackground struct {
	// Budget is the execution window granted to a background sync.
	Budget time.Duration
}

// TrackerConfig is the tracker binary's configuration view assembled from
// [StructuredConfig].
type TrackerConfig struct {
	Adapter    TrackerAdapter
	Storage    TrackerStorage
	Device     TrackerDevice
	Sync       TrackerSync
	Background TrackerBackground
}

// GetTrackerConfig builds and validates the tracker-specific config view
// from the merged structured configuration, applying defaults for optional
// fields.
func GetTrackerConfig() (*TrackerConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading structured config: %w", err)
	}

	cfg := &TrackerConfig{
		Adapter: TrackerAdapter{
			HubAddress:     structured.Adapter.HubAddress,
			RequestTimeout: structured.Adapter.RequestTimeout,
		},
		Storage: TrackerStorage{
			Path: structured.Storage.Local.Path,
		},
		Device: TrackerDevice{
			ID:      structured.Device.ID,
			Secret:  structured.Device.Secret,
			LogPath: structured.Device.LogPath,
		},
		Sync: TrackerSync{
			Interval:       structured.Sync.Interval,
			Strategy:       structured.Sync.Strategy,
			DevicePriority: structured.Sync.DevicePriority,
		},
		Background: TrackerBackground{
			Budget: structured.Background.Budget,
		},
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *TrackerConfig) applyDefaults() {
	if c.Adapter.HubAddress == "" {
		c.Adapter.HubAddress = "http://localhost:8080"
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = 15 * time.Second
	}
	if c.Storage.Path == "" {
		c.Storage.Path = ":memory:"
	}
	if c.Sync.Interval <= 0 {
		c.Sync.Interval = 5 * time.Minute
	}
	if c.Sync.Strategy == "" {
		c.Sync.Strategy = "timestamp"
	}
	if c.Background.Budget <= 0 {
		c.Background.Budget = 25 * time.Second
	}
}

func (c *TrackerConfig) validate() error {
	if c.Device.ID == "" {
		return fmt.Errorf("%w: empty device ID", ErrInvalidDeviceConfigs)
	}
	if _, ok := knownStrategies[c.Sync.Strategy]; !ok {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidSyncConfigs, c.Sync.Strategy)
	}
	if c.Sync.Strategy == "device_priority" && len(c.Sync.DevicePriority) == 0 {
		return fmt.Errorf("%w: device_priority strategy needs a priority list", ErrInvalidSyncConfigs)
	}

	return nil
}
