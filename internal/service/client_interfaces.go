package service

import (
	"context"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConflictResolver reconciles the local and remote copies of the measurement
// set into one per-identity decision list. It is pure: no I/O, no stored
// state, deterministic for a given input and strategy.
type ConflictResolver interface {
	// Resolve compares the two record sets and returns one decision per
	// identity that needs any action. Identities already in agreement on
	// both sides produce no decision.
	Resolve(ctx context.Context, local, remote []models.Measurement) ([]models.Resolution, error)
}

// SyncOrchestrator drives the tracker's synchronization lifecycle: it owns
// the observable sync state, guarantees at most one pass in flight, and
// reacts to app lifecycle transitions.
type SyncOrchestrator interface {
	// Sync runs a full pass: availability check, complete exchange,
	// conflict resolution, transactional apply, re-upload of everything
	// still flagged dirty. Returns ErrSyncInProgress when a pass is
	// already running.
	Sync(ctx context.Context) error

	// QuickSync pushes the dirty set and applies the remote change-cursor
	// delta as-is, without local conflict computation. It shares the
	// single-flight guard with Sync.
	QuickSync(ctx context.Context) error

	// OnForeground is called when the app enters the foreground; it kicks
	// off a quick pass when the last successful pass is stale.
	OnForeground(ctx context.Context)

	// OnResignActive is called when the app is about to lose the
	// foreground; it requests a background execution window and runs a
	// quick pass inside it.
	OnResignActive(ctx context.Context)

	// OnBecameActive is called when the app regains the foreground; it
	// cancels any in-flight background window, re-checks account
	// availability when an unavailable banner is showing, and starts a
	// fresh full sync.
	OnBecameActive(ctx context.Context)

	// OnRemoteChange is called when the hub signals that another device
	// pushed changes; it schedules a quick pass.
	OnRemoteChange(ctx context.Context)

	// Reset abandons cached remote state and returns the orchestrator to
	// idle. A pass still in flight finishes but can no longer publish its
	// result.
	Reset()

	// Status returns the current observable sync state.
	Status() models.SyncStatus

	// LastSyncedAt returns when the last pass finished successfully, or
	// the zero time if none has.
	LastSyncedAt() time.Time

	// LastReport returns the summary of the last successful pass.
	LastReport() models.SyncReport
}

// SampleSource produces raw vital readings. Implementations wrap whatever
// sensor or import pipeline feeds the tracker.
type SampleSource interface {
	Sample(ctx context.Context) (models.VitalSample, error)
}

// ScoreCalculator turns a raw sample into a stress score, its category, and
// the per-component confidence values backing the score.
type ScoreCalculator interface {
	Score(sample models.VitalSample) (score float64, category models.StressCategory, confidence []float64)
}

// RecordingService is the local write and read path for measurements. Writes
// flag the record for upload so the next sync pass propagates it; reads
// never fail the caller; a broken local store reads as empty.
type RecordingService interface {
	// Record samples the source, scores it, and persists a new measurement
	// flagged for upload.
	Record(ctx context.Context) (models.Measurement, error)

	// Delete tombstones the measurement so the deletion propagates on the
	// next sync pass.
	Delete(ctx context.Context, recordID string) error

	// List returns live measurements matching the filter. Store failures
	// are logged and surface as an empty result.
	List(ctx context.Context, filter store.MeasurementFilter) []models.Measurement
}
