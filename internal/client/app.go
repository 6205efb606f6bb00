package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/pulse-keeper/internal/adapter"
	"github.com/MKhiriev/pulse-keeper/internal/config"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/service"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/internal/workers"
	"github.com/MKhiriev/pulse-keeper/models"
)

// App is the tracker agent: it samples vitals into the local store and keeps
// that store converged with the hub.
type App struct {
	cfg      *config.TrackerConfig
	logger   *logger.Logger
	storages *store.TrackerStorages
	engine   adapter.RemoteSyncEngine
	services *service.TrackerServices
	workers  *workers.Workers

	syncWorker *workers.SyncWorker
}

// NewApp loads configuration and wires the full tracker stack: local SQLite
// store, HTTP sync engine, conflict resolver, orchestrator and the periodic
// sync worker.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.GetTrackerConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading tracker config: %w", err)
	}

	log := logger.New("tracker")
	if cfg.Device.LogPath != "" {
		log = logger.NewFileLogger("tracker", cfg.Device.LogPath)
	}

	storages, err := store.NewTrackerStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating tracker storages: %w", err)
	}

	engine := adapter.NewHTTPRemoteSyncEngine(cfg.Adapter, cfg.Device, log)

	services, err := service.NewTrackerServices(
		storages,
		engine,
		newSyntheticSampleSource(),
		newVitalsScoreCalculator(),
		cfg,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating tracker services: %w", err)
	}

	syncWorker := workers.NewSyncWorker(ctx, services.Orchestrator, cfg.Sync.Interval, log)

	return &App{
		cfg:        cfg,
		logger:     log,
		storages:   storages,
		engine:     engine,
		services:   services,
		workers:    workers.NewWorkers(syncWorker),
		syncWorker: syncWorker,
	}, nil
}

// Run brings the agent online and blocks until a termination signal. Startup
// sync and change-notification registration are best-effort: the agent keeps
// recording offline and the periodic worker converges the store later.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.services.Orchestrator.Sync(ctx); err != nil && !errors.Is(err, service.ErrSyncInProgress) {
		a.logger.Warn().Err(err).Msg("startup sync failed, continuing offline")
	}

	if err := a.engine.SetupChangeNotifications(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("change notifications unavailable")
	}

	a.workers.Run()
	a.logger.Info().Str("device_id", a.cfg.Device.ID).Msg("tracker agent running")

	<-ctx.Done()

	a.shutdown()
	return nil
}

func (a *App) shutdown() {
	a.logger.Info().Msg("tracker agent stopping")

	a.syncWorker.Stop()

	// flush pending records before the store goes away
	flushCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Background.Budget)
	defer cancel()
	if err := a.services.Orchestrator.QuickSync(flushCtx); err != nil && !errors.Is(err, service.ErrSyncInProgress) {
		a.logger.Warn().Err(err).Msg("final sync pass failed")
	}

	if err := a.storages.DB.Close(); err != nil {
		a.logger.Error().Err(err).Msg("error closing local store")
	}
}

// Record takes one reading through the sampling pipeline and stores it
// flagged for upload.
func (a *App) Record(ctx context.Context) (models.Measurement, error) {
	return a.services.Recording.Record(ctx)
}

// Delete soft-deletes a reading so the removal propagates on the next sync.
func (a *App) Delete(ctx context.Context, recordID string) error {
	return a.services.Recording.Delete(ctx, recordID)
}

// List returns locally stored readings matching the filter.
func (a *App) List(ctx context.Context, filter store.MeasurementFilter) []models.Measurement {
	return a.services.Recording.List(ctx, filter)
}

// OnForeground forwards the app-visible lifecycle event to the sync core.
func (a *App) OnForeground(ctx context.Context) { a.services.Orchestrator.OnForeground(ctx) }

// OnResignActive forwards the app-losing-focus lifecycle event.
func (a *App) OnResignActive(ctx context.Context) { a.services.Orchestrator.OnResignActive(ctx) }

// OnBecameActive forwards the app-regaining-focus lifecycle event.
func (a *App) OnBecameActive(ctx context.Context) { a.services.Orchestrator.OnBecameActive(ctx) }

// OnRemoteChange forwards a remote-change push notification.
func (a *App) OnRemoteChange(ctx context.Context) { a.services.Orchestrator.OnRemoteChange(ctx) }

// SyncStatus exposes the orchestrator's observable state for presentation.
func (a *App) SyncStatus() models.SyncStatus { return a.services.Orchestrator.Status() }
