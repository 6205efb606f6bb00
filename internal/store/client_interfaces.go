package store

import (
	"context"
	"time"

	"github.com/MKhiriev/pulse-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MeasurementFilter narrows a Fetch query. Zero-valued fields are ignored.
type MeasurementFilter struct {
	// RecordIDs restricts the result to the given identities.
	RecordIDs []string
	// From/To bound TakenAt (inclusive from, exclusive to).
	From *time.Time
	To   *time.Time
	// Categories restricts the result to the given stress categories.
	Categories []models.StressCategory
	// IncludeDeleted also returns tombstoned records.
	IncludeDeleted bool
}

// LocalMeasurementRepository is the tracker's local measurement store. Both
// the recording path (new measurement inserts) and the sync core
// (conflict-driven writes) go through this interface; the implementation is
// responsible for its own write atomicity.
type LocalMeasurementRepository interface {
	// Save upserts the given records keyed by record identity.
	Save(ctx context.Context, measurements ...models.Measurement) error

	// Get returns the single record with the given identity, or
	// ErrMeasurementNotFound.
	Get(ctx context.Context, recordID string) (models.Measurement, error)

	// GetAll returns every record, tombstones included when includeDeleted
	// is set.
	GetAll(ctx context.Context, includeDeleted bool) ([]models.Measurement, error)

	// Fetch returns records matching the filter.
	Fetch(ctx context.Context, filter MeasurementFilter) ([]models.Measurement, error)

	// GetPendingUpload returns every record flagged for upload.
	GetPendingUpload(ctx context.Context) ([]models.Measurement, error)

	// ClearPendingUpload drops the upload flag after a successful push.
	ClearPendingUpload(ctx context.Context, recordIDs ...string) error

	// SoftDelete turns the record into a tombstone and flags it for upload
	// so the deletion propagates.
	SoftDelete(ctx context.Context, recordID string) error

	// Delete removes the record row entirely (tombstone application).
	Delete(ctx context.Context, recordID string) error

	// DeleteAll empties the store. Used on account sign-out.
	DeleteAll(ctx context.Context) error

	// ApplyResolutions applies one sync pass's decisions transactionally:
	// either every decision lands or none do.
	ApplyResolutions(ctx context.Context, decisions []models.Resolution) error
}
