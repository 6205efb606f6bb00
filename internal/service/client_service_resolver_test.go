// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pulse-keeper/models"
)

func tsPtr(unix int64) *time.Time {
	t := time.Unix(unix, 0).UTC()
	return &t
}

// reading builds a live measurement with the given identity, device and
// remote modification time (0 means never synced).
func reading(recordID, deviceID string, modifiedAt int64) models.Measurement {
	m := models.Measurement{
		RecordID:  recordID,
		DeviceID:  deviceID,
		TakenAt:   time.Unix(1000, 0).UTC(),
		Score:     42.5,
		HeartRate: 68,
		HRV:       55,
		Category:  models.CategoryMild,
	}
	if modifiedAt > 0 {
		m.RemoteModifiedAt = tsPtr(modifiedAt)
	}
	return m
}

func newResolver(t *testing.T, strategy models.ResolutionStrategy, priority ...string) ConflictResolver {
	t.Helper()
	r, err := NewConflictResolver(strategy, priority)
	require.NoError(t, err)
	return r
}

func resolveOne(t *testing.T, r ConflictResolver, local, remote []models.Measurement) models.Resolution {
	t.Helper()
	decisions, err := r.Resolve(context.Background(), local, remote)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	return decisions[0]
}

func TestNewConflictResolver_RejectsUnknownStrategy(t *testing.T) {
	_, err := NewConflictResolver("newest_wins", nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestResolve_RemoteOnlyRecordIsDownloaded(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	rm := reading("rec-1", "phone-1", 20)
	d := resolveOne(t, r, nil, []models.Measurement{rm})

	assert.Equal(t, models.OutcomeKeepRemote, d.Outcome)
	assert.False(t, d.NeedsUpload)
	require.NotNil(t, d.Winner)
	assert.Equal(t, "rec-1", d.Winner.RecordID)
}

func TestResolve_RemoteOnlyTombstoneNeedsNoAction(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	rm := reading("rec-1", "phone-1", 20)
	rm.Deleted = true

	decisions, err := r.Resolve(context.Background(), nil, []models.Measurement{rm})
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestResolve_LocalOnlyRecordIsUploaded(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 0)
	lm.PendingUpload = true

	d := resolveOne(t, r, []models.Measurement{lm}, nil)
	assert.Equal(t, models.OutcomeKeepLocal, d.Outcome)
	assert.True(t, d.NeedsUpload)
}

func TestResolve_LocalOnlyNeverSyncedTombstoneIsPurged(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 0)
	lm.Deleted = true

	d := resolveOne(t, r, []models.Measurement{lm}, nil)
	assert.Equal(t, models.OutcomeDelete, d.Outcome)
	assert.Nil(t, d.Winner)
}

func TestResolve_LocalSyncedTombstoneKeepsPropagating(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 10)
	lm.Deleted = true

	d := resolveOne(t, r, []models.Measurement{lm}, nil)
	assert.Equal(t, models.OutcomeKeepLocal, d.Outcome)
	assert.True(t, d.NeedsUpload)
}

func TestResolve_BothTombstonedPurgesLocalRow(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 10)
	lm.Deleted = true
	rm := reading("rec-1", "phone-1", 20)
	rm.Deleted = true

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeDelete, d.Outcome)
}

func TestResolve_NewerRemoteTombstoneWins(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 10)
	rm := reading("rec-1", "phone-1", 20)
	rm.Deleted = true

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeDelete, d.Outcome)
}

func TestResolve_StaleRemoteTombstoneLosesToLiveEdit(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 30)
	rm := reading("rec-1", "phone-1", 20)
	rm.Deleted = true

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepLocal, d.Outcome)
	assert.True(t, d.NeedsUpload, "the surviving copy must overwrite the stale tombstone")
}

func TestResolve_LocalTombstoneLosesToNewerRemoteEdit(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 10)
	lm.Deleted = true
	rm := reading("rec-1", "phone-1", 20)

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepRemote, d.Outcome, "resurrection: the remote edit postdates the deletion")
}

func TestResolve_LocalTombstoneBeatsStaleRemoteCopy(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 20)
	lm.Deleted = true
	rm := reading("rec-1", "phone-1", 20)

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepLocal, d.Outcome)
	assert.True(t, d.NeedsUpload)
	require.NotNil(t, d.Winner)
	assert.True(t, d.Winner.Deleted)
}

func TestResolve_IdenticalCleanCopiesProduceNoDecision(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 20)
	rm := reading("rec-1", "watch-1", 20)

	decisions, err := r.Resolve(context.Background(), []models.Measurement{lm}, []models.Measurement{rm})
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestResolve_IdenticalDirtyCopyConvergesWithoutReupload(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 20)
	lm.PendingUpload = true
	rm := reading("rec-1", "watch-1", 20)

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepRemote, d.Outcome)
	assert.False(t, d.NeedsUpload, "identical content must not bounce back to the hub")
}

func TestResolve_ConfidenceCollectionsAreUnioned(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	lm := reading("rec-1", "watch-1", 10)
	lm.Confidence = []float64{0.5, 0.9}
	rm := reading("rec-1", "watch-1", 20)
	rm.Confidence = []float64{0.7, 0.9}

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeMerge, d.Outcome)
	assert.True(t, d.NeedsUpload)
	require.NotNil(t, d.Winner)
	assert.Equal(t, []float64{0.5, 0.7, 0.9}, d.Winner.Confidence)
	assert.Equal(t, rm.RemoteModifiedAt, d.Winner.RemoteModifiedAt, "merge keeps the authoritative timestamp")
}

func TestResolve_TimestampStrategy(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	tests := []struct {
		name        string
		localMod    int64
		remoteMod   int64
		wantOutcome models.ResolutionOutcome
	}{
		{"remote newer wins", 10, 20, models.OutcomeKeepRemote},
		{"local newer wins", 30, 20, models.OutcomeKeepLocal},
		{"tie goes to local", 20, 20, models.OutcomeKeepLocal},
		{"never-synced local loses", 0, 20, models.OutcomeKeepRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lm := reading("rec-1", "watch-1", tt.localMod)
			lm.Score = 50 // diverged copies
			rm := reading("rec-1", "phone-1", tt.remoteMod)

			d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
			assert.Equal(t, tt.wantOutcome, d.Outcome)
		})
	}
}

func TestResolve_ServerAndClientStrategies(t *testing.T) {
	lm := reading("rec-1", "watch-1", 30)
	lm.Score = 50
	rm := reading("rec-1", "phone-1", 10)

	d := resolveOne(t, newResolver(t, models.StrategyServer), []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepRemote, d.Outcome, "server strategy ignores timestamps")

	d = resolveOne(t, newResolver(t, models.StrategyClient), []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepLocal, d.Outcome, "client strategy ignores timestamps")
}

func TestResolve_DevicePriorityStrategy(t *testing.T) {
	r := newResolver(t, models.StrategyDevicePriority, "watch-1", "phone-1")

	lm := reading("rec-1", "watch-1", 10)
	lm.Score = 50
	rm := reading("rec-1", "phone-1", 20)

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepLocal, d.Outcome, "watch-1 outranks phone-1 regardless of timestamps")
}

func TestResolve_DevicePriorityUnrankedDeviceLoses(t *testing.T) {
	r := newResolver(t, models.StrategyDevicePriority, "phone-1")

	lm := reading("rec-1", "watch-9", 30)
	lm.Score = 50
	rm := reading("rec-1", "phone-1", 10)

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepRemote, d.Outcome)
}

func TestResolve_DevicePriorityTieFallsBackToTimestamp(t *testing.T) {
	r := newResolver(t, models.StrategyDevicePriority, "phone-1")

	lm := reading("rec-1", "watch-1", 10)
	lm.Score = 50
	rm := reading("rec-1", "watch-2", 20)

	d := resolveOne(t, r, []models.Measurement{lm}, []models.Measurement{rm})
	assert.Equal(t, models.OutcomeKeepRemote, d.Outcome, "equally ranked devices compare by timestamp")
}

// A freshly restored device holds a stale never-synced copy of rec-1 while
// the hub carries a newer edit plus a record the device has never seen. The
// device must adopt both hub copies and upload nothing.
func TestResolve_RestoredDeviceAdoptsHubState(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	localA := reading("rec-1", "watch-1", 0)
	localA.TakenAt = time.Unix(10, 0).UTC()

	remoteA := reading("rec-1", "phone-1", 20)
	remoteB := reading("rec-2", "phone-1", 21)

	decisions, err := r.Resolve(
		context.Background(),
		[]models.Measurement{localA},
		[]models.Measurement{remoteA, remoteB},
	)
	require.NoError(t, err)
	require.Len(t, decisions, 2)

	for _, d := range decisions {
		assert.Equal(t, models.OutcomeKeepRemote, d.Outcome)
		assert.False(t, d.NeedsUpload)
	}
}

func TestResolve_ObservesContextCancellation(t *testing.T) {
	r := newResolver(t, models.StrategyTimestamp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, nil, []models.Measurement{reading("rec-1", "phone-1", 20)})
	assert.ErrorIs(t, err, context.Canceled)
}
