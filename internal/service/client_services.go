package service

import (
	"github.com/MKhiriev/pulse-keeper/internal/adapter"
	"github.com/MKhiriev/pulse-keeper/internal/background"
	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/models"
)

// TrackerServices bundles the device-side service layer.
type TrackerServices struct {
	Resolver     ConflictResolver
	Orchestrator SyncOrchestrator
	Recording    RecordingService
}

// NewTrackerServices wires the tracker service graph: resolver from the
// configured strategy, orchestrator on top of the local store and the hub
// engine, recording path on top of the sampling pipeline.
func NewTrackerServices(
	storages *store.TrackerStorages,
	engine adapter.RemoteSyncEngine,
	source SampleSource,
	calculator ScoreCalculator,
	cfg *config.TrackerConfig,
	log *logger.Logger,
) (*TrackerServices, error) {
	resolver, err := NewConflictResolver(models.ResolutionStrategy(cfg.Sync.Strategy), cfg.Sync.DevicePriority)
	if err != nil {
		return nil, err
	}

	backgrounds := background.NewManager(cfg.Background.Budget, log)

	return &TrackerServices{
		Resolver:     resolver,
		Orchestrator: NewSyncOrchestrator(storages.Measurements, engine, resolver, backgrounds, log),
		Recording:    NewRecordingService(storages.Measurements, source, calculator, cfg.Device.ID, log),
	}, nil
}
