// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/pulse-keeper/internal/adapter"
	"github.com/MKhiriev/pulse-keeper/internal/background"
	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/internal/store"
	"github.com/MKhiriev/pulse-keeper/models"
)

// staleAfter is how old the last successful pass may be before a foreground
// transition triggers a new one.
const staleAfter = time.Minute

// Progress milestones published while a pass runs. The values are coarse on
// purpose; the UI only needs enough resolution for an indeterminate bar.
const (
	progressChecking  = 0.1
	progressExchanged = 0.4
	progressResolved  = 0.7
	progressApplied   = 0.9
)

type syncOrchestrator struct {
	localStore  store.LocalMeasurementRepository
	engine      adapter.RemoteSyncEngine
	resolver    ConflictResolver
	backgrounds *background.Manager
	logger      *logger.Logger

	mu           sync.RWMutex
	inFlight     bool
	generation   uint64
	status       models.SyncStatus
	lastSyncedAt time.Time
	lastReport   models.SyncReport
}

// NewSyncOrchestrator wires the sync state machine to its collaborators.
// The orchestrator starts idle; nothing runs until a trigger arrives.
func NewSyncOrchestrator(
	localStore store.LocalMeasurementRepository,
	engine adapter.RemoteSyncEngine,
	resolver ConflictResolver,
	backgrounds *background.Manager,
	log *logger.Logger,
) SyncOrchestrator {
	return &syncOrchestrator{
		localStore:  localStore,
		engine:      engine,
		resolver:    resolver,
		backgrounds: backgrounds,
		logger:      log,
		status:      models.SyncStatus{Phase: models.SyncIdle},
	}
}

func (o *syncOrchestrator) Sync(ctx context.Context) error {
	return o.run(ctx, true)
}

func (o *syncOrchestrator) QuickSync(ctx context.Context) error {
	return o.run(ctx, false)
}

// run executes one pass end to end. full selects between the complete
// exchange with conflict resolution and the cursor-based delta exchange
// that applies pulled records as-is.
func (o *syncOrchestrator) run(ctx context.Context, full bool) error {
	gen, ok := o.begin()
	if !ok {
		return ErrSyncInProgress
	}
	defer o.end()

	log := o.logger.GetChildLogger()
	log.Debug().Bool("full", full).Msg("sync pass started")

	report, err := o.pass(ctx, full)
	if err != nil {
		o.publishFailure(gen, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		log.Err(err).Msg("sync pass failed")
		return err
	}

	o.publishSuccess(gen, report)
	log.Info().
		Int("resolved", report.Resolved).
		Int("uploaded", report.Uploaded).
		Int("deleted", report.Deleted).
		Msg("sync pass finished")
	return nil
}

// pass is the full sync pipeline: availability check, complete exchange,
// conflict resolution, transactional apply, re-upload of every record still
// flagged dirty. Quick passes branch off once the dirty set is loaded.
func (o *syncOrchestrator) pass(ctx context.Context, full bool) (models.SyncReport, error) {
	o.setProgress(progressChecking)

	account, err := o.engine.CheckAccountStatus(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("check account status: %w", err)
	}
	switch account {
	case models.AccountNoAccount:
		return models.SyncReport{}, adapter.ErrSignedOut
	case models.AccountRestricted:
		return models.SyncReport{}, adapter.ErrServiceDisabled
	case models.AccountUnknown:
		// the engine cannot vouch for the account; treat it as unreachable
		// rather than risking an exchange
		return models.SyncReport{}, adapter.ErrNoConnectivity
	}

	pending, err := o.localStore.GetPendingUpload(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load pending uploads: %w", err)
	}

	if !full {
		return o.quickPass(ctx, pending)
	}

	remote, err := o.engine.Sync(ctx, pending)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("exchange with remote store: %w", err)
	}
	o.markUploaded(ctx, pending)
	o.setProgress(progressExchanged)

	local, err := o.localStore.GetAll(ctx, true)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("load local records: %w", err)
	}

	decisions, err := o.resolver.Resolve(ctx, local, remote)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("resolve conflicts: %w", err)
	}
	o.setProgress(progressResolved)

	if len(decisions) > 0 {
		if err = o.localStore.ApplyResolutions(ctx, decisions); err != nil {
			return models.SyncReport{}, fmt.Errorf("apply resolutions: %w", err)
		}
	}
	o.setProgress(progressApplied)

	// Conflict decisions may have flagged fresh winners for upload; push
	// every dirty record so no device is left holding changes the others
	// cannot see.
	uploaded, err := o.pushPending(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("push pending uploads: %w", err)
	}

	report := models.SyncReport{
		Resolved:   len(decisions),
		Uploaded:   len(pending) + uploaded,
		FinishedAt: time.Now(),
	}
	for _, d := range decisions {
		if d.Outcome == models.OutcomeDelete {
			report.Deleted++
		}
	}
	return report, nil
}

// quickPass is the cursor-delta path: push the dirty set, pull what changed
// remotely, apply it verbatim. No conflict computation happens against a
// delta; unchanged local records are absent from it, and resolving would
// misread every one of them as local-only and re-flag it for upload. A delta
// record whose identity is locally dirty is left alone for the next full
// pass to reconcile.
func (o *syncOrchestrator) quickPass(ctx context.Context, pending []models.Measurement) (models.SyncReport, error) {
	remote, err := o.engine.PerformBackgroundSync(ctx, pending)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("exchange with remote store: %w", err)
	}
	o.markUploaded(ctx, pending)
	o.setProgress(progressExchanged)

	dirty := make(map[string]struct{}, len(pending))
	for _, m := range pending {
		dirty[m.RecordID] = struct{}{}
	}

	report := models.SyncReport{Uploaded: len(pending)}
	var decisions []models.Resolution
	for _, rm := range remote {
		if _, isDirty := dirty[rm.RecordID]; isDirty {
			continue
		}
		if rm.Deleted {
			decisions = append(decisions, models.Resolution{
				RecordID: rm.RecordID,
				Remote:   ptr(rm),
				Outcome:  models.OutcomeDelete,
			})
			report.Deleted++
			continue
		}
		decisions = append(decisions, keepRemote(nil, rm))
	}
	o.setProgress(progressResolved)

	if len(decisions) > 0 {
		if err = o.localStore.ApplyResolutions(ctx, decisions); err != nil {
			return models.SyncReport{}, fmt.Errorf("apply pulled records: %w", err)
		}
	}
	o.setProgress(progressApplied)

	report.FinishedAt = time.Now()
	return report, nil
}

// pushPending uploads every record still flagged dirty after the apply step
// and clears the flag on success.
func (o *syncOrchestrator) pushPending(ctx context.Context) (int, error) {
	pending, err := o.localStore.GetPendingUpload(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending uploads: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if err = o.engine.Push(ctx, pending); err != nil {
		return 0, err
	}
	o.markUploaded(ctx, pending)
	return len(pending), nil
}

// markUploaded clears the dirty flag after a successful push. A failure here
// is logged, not fatal: the worst case is one redundant re-upload on the
// next pass.
func (o *syncOrchestrator) markUploaded(ctx context.Context, pushed []models.Measurement) {
	if len(pushed) == 0 {
		return
	}
	ids := make([]string, 0, len(pushed))
	for _, m := range pushed {
		ids = append(ids, m.RecordID)
	}
	if err := o.localStore.ClearPendingUpload(ctx, ids...); err != nil {
		o.logger.Err(err).Int("records", len(ids)).Msg("could not clear upload flags")
	}
}

// OnForeground runs a quick pass when the last successful sync has gone
// stale. Foreground entry wants fresh data fast; the cursor-delta exchange
// delivers that, and the periodic worker still performs full passes.
func (o *syncOrchestrator) OnForeground(ctx context.Context) {
	o.mu.RLock()
	stale := time.Since(o.lastSyncedAt) >= staleAfter
	o.mu.RUnlock()

	if !stale {
		return
	}
	go func() {
		if err := o.QuickSync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			o.logger.Err(err).Msg("foreground sync failed")
		}
	}()
}

// OnResignActive grabs a background execution window and runs a quick pass
// inside it. If the window expires first, the pass's context is cancelled
// and the token still releases exactly once.
func (o *syncOrchestrator) OnResignActive(ctx context.Context) {
	token, err := o.backgrounds.Begin("resign-active-sync", func() {
		o.logger.Warn().Msg("background sync ran out of budget")
	})
	if err != nil {
		o.logger.Debug().Err(err).Msg("background window unavailable, skipping sync")
		return
	}

	go func() {
		defer token.Finish()
		if err := o.QuickSync(token.Context()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			o.logger.Err(err).Msg("background sync failed")
		}
	}()
}

// OnBecameActive cancels any background execution window still running and
// returns the device to foreground pace with a fresh full sync. A banner
// raised while the app was inactive is re-checked first; while the condition
// behind it still holds, no sync starts.
func (o *syncOrchestrator) OnBecameActive(ctx context.Context) {
	if o.backgrounds.FinishActive() {
		o.logger.Debug().Msg("background window cancelled on activation")
	}

	o.mu.RLock()
	unavailable := o.status.Phase == models.SyncUnavailable
	o.mu.RUnlock()

	if unavailable {
		account, err := o.engine.CheckAccountStatus(ctx)
		if err != nil || account != models.AccountAvailable {
			return
		}

		o.mu.Lock()
		if o.status.Phase == models.SyncUnavailable {
			o.status = models.SyncStatus{Phase: models.SyncIdle}
		}
		o.mu.Unlock()
	}

	go func() {
		if err := o.Sync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			o.logger.Err(err).Msg("reactivation sync failed")
		}
	}()
}

func (o *syncOrchestrator) OnRemoteChange(ctx context.Context) {
	go func() {
		if err := o.QuickSync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			o.logger.Err(err).Msg("remote-change sync failed")
		}
	}()
}

// Reset bumps the generation so an in-flight pass cannot publish a stale
// result, drops the engine's cached session and cursor, and returns the
// observable state to idle.
func (o *syncOrchestrator) Reset() {
	o.engine.Reset()

	o.mu.Lock()
	o.generation++
	o.status = models.SyncStatus{Phase: models.SyncIdle}
	o.lastSyncedAt = time.Time{}
	o.lastReport = models.SyncReport{}
	o.mu.Unlock()
}

func (o *syncOrchestrator) Status() models.SyncStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

func (o *syncOrchestrator) LastSyncedAt() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastSyncedAt
}

func (o *syncOrchestrator) LastReport() models.SyncReport {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastReport
}

// begin atomically claims the single in-flight slot and moves the phase to
// syncing. The returned generation lets the pass detect a Reset that
// happened while it ran.
func (o *syncOrchestrator) begin() (uint64, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight {
		return 0, false
	}
	o.inFlight = true
	o.status = models.SyncStatus{Phase: models.SyncSyncing}
	return o.generation, true
}

func (o *syncOrchestrator) end() {
	o.mu.Lock()
	o.inFlight = false
	o.mu.Unlock()
}

func (o *syncOrchestrator) setProgress(p float64) {
	o.mu.Lock()
	if o.status.Phase == models.SyncSyncing {
		o.status.Progress = p
	}
	o.mu.Unlock()
}

// publishSuccess records the pass result unless a Reset invalidated it.
func (o *syncOrchestrator) publishSuccess(gen uint64, report models.SyncReport) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.generation != gen {
		return
	}
	o.status = models.SyncStatus{Phase: models.SyncSuccess, Progress: 1}
	o.lastSyncedAt = report.FinishedAt
	o.lastReport = report
}

// publishFailure classifies the error: environmental conditions land in the
// unavailable state with a reason, everything else is a plain sync error.
func (o *syncOrchestrator) publishFailure(gen uint64, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.generation != gen {
		return
	}

	if reason, unavailable := unavailableReason(err); unavailable {
		o.status = models.SyncStatus{Phase: models.SyncUnavailable, Reason: reason}
		return
	}
	o.status = models.SyncStatus{Phase: models.SyncError, Err: err}
}

// unavailableReason maps the engine's typed failures onto the unavailable
// reasons. Rate limiting is not an unavailable reason: it is transient, so it
// surfaces as a retriable error instead of a persistent banner.
func unavailableReason(err error) (models.UnavailableReason, bool) {
	switch {
	case errors.Is(err, adapter.ErrNoConnectivity):
		return models.ReasonNoConnectivity, true
	case errors.Is(err, adapter.ErrSignedOut):
		return models.ReasonSignedOut, true
	case errors.Is(err, adapter.ErrServiceDisabled):
		return models.ReasonServiceDisabled, true
	case errors.Is(err, adapter.ErrQuotaExceeded):
		return models.ReasonQuotaExceeded, true
	}
	return "", false
}
