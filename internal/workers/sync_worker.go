package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/service"
)

// SyncWorker triggers a full sync pass on a fixed cadence. It is idle until
// Run is called and exits when Stop is called or its parent context ends.
type SyncWorker struct {
	orchestrator service.SyncOrchestrator
	interval     time.Duration
	parent       context.Context
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a periodic sync worker. If interval is zero or
// negative it defaults to 5 minutes.
func NewSyncWorker(ctx context.Context, orchestrator service.SyncOrchestrator, interval time.Duration, log *logger.Logger) *SyncWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SyncWorker{
		orchestrator: orchestrator,
		interval:     interval,
		parent:       ctx,
		logger:       log,
	}
}

// Run implements Worker. It stops any previously running loop, then launches
// a goroutine that triggers a sync every interval. A pass already in flight
// is not an error; the tick is simply skipped.
func (w *SyncWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(w.parent)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := w.orchestrator.Sync(ctx); err != nil && !errors.Is(err, service.ErrSyncInProgress) {
					w.logger.Err(err).Msg("scheduled sync failed")
				}
			}
		}
	}()
}

// Stop cancels the loop and blocks until the goroutine has fully exited.
// Safe to call when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
