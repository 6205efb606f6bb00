package adapter

import (
	"context"

	"github.com/MKhiriev/pulse-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteSyncEngine is the contract the sync orchestrator requires from the
// remote store. All methods returning an error surface the package's typed
// failures (ErrNoConnectivity, ErrSignedOut, ErrServiceDisabled,
// ErrQuotaExceeded, ErrRateLimited, ErrRecordNotFound) or an opaque wrapped
// failure, so callers can classify by errors.Is.
type RemoteSyncEngine interface {
	// Sync performs a full bidirectional exchange: it pushes the given
	// local records and returns the hub's complete record set with
	// authoritative modification timestamps.
	Sync(ctx context.Context, local []models.Measurement) ([]models.Measurement, error)

	// Push uploads records without pulling anything back. Used to re-upload
	// records that a conflict decision kept or merged locally.
	Push(ctx context.Context, measurements []models.Measurement) error

	// PerformBackgroundSync is the reduced-scope exchange: it pushes the
	// given pending records and pulls only records changed since the last
	// exchange cursor. It observes ctx cancellation before and after each
	// network round trip so an expiring background window can stop it.
	PerformBackgroundSync(ctx context.Context, pending []models.Measurement) ([]models.Measurement, error)

	// CheckAccountStatus reports the remote account's availability without
	// exchanging any records.
	CheckAccountStatus(ctx context.Context) (models.AccountStatus, error)

	// SetupChangeNotifications registers this device for push-triggered
	// wake-ups. Failures are non-fatal; callers log and continue.
	SetupChangeNotifications(ctx context.Context) error

	// Reset clears the cached exchange cursor and session state. Called
	// when the orchestrator resets.
	Reset()
}
