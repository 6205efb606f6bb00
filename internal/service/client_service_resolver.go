package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/pulse-keeper/models"
)

// conflictResolver is the concrete implementation of ConflictResolver.
// It performs a purely in-memory comparison of the local and remote
// measurement sets; no storage layer or logger is required because the
// operation is stateless and produces no side effects.
type conflictResolver struct {
	strategy models.ResolutionStrategy

	// rank maps device identifiers to their position in the configured
	// priority list; lower is stronger. Devices absent from the list rank
	// below every listed one.
	rank map[string]int
}

// NewConflictResolver constructs a resolver for the given strategy. The
// priority list is only consulted by StrategyDevicePriority and may be nil
// for the other strategies.
func NewConflictResolver(strategy models.ResolutionStrategy, devicePriority []string) (ConflictResolver, error) {
	switch strategy {
	case models.StrategyTimestamp, models.StrategyServer, models.StrategyClient, models.StrategyDevicePriority:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	rank := make(map[string]int, len(devicePriority))
	for i, id := range devicePriority {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}

	return &conflictResolver{strategy: strategy, rank: rank}, nil
}

// Resolve implements ConflictResolver.
//
// It builds two O(1) lookup indexes keyed by record identity, then makes two
// linear passes to classify every identity into exactly one decision:
//
//   - Pass 1 (over remote): handles identities present remotely, whether or
//     not they also exist locally.
//   - Pass 2 (over local): catches identities that exist only locally and
//     were therefore invisible in pass 1.
//
// ctx cancellation is checked at the start of each iteration so that callers
// can abort early when reconciling large record sets.
func (r *conflictResolver) Resolve(ctx context.Context, local, remote []models.Measurement) ([]models.Resolution, error) {
	localIndex := make(map[string]models.Measurement, len(local))
	for _, lm := range local {
		localIndex[lm.RecordID] = lm
	}

	remoteIndex := make(map[string]models.Measurement, len(remote))
	for _, rm := range remote {
		remoteIndex[rm.RecordID] = rm
	}

	var decisions []models.Resolution

	// Pass 1: iterate over remote records.
	for _, rm := range remote {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lm, existsLocally := localIndex[rm.RecordID]

		if !existsLocally {
			if rm.Deleted {
				// Created and deleted remotely before this device ever
				// saw it. Nothing to do.
				continue
			}
			// Remote has a live record this device has never seen.
			decisions = append(decisions, keepRemote(nil, rm))
			continue
		}

		if d, acted := r.resolvePair(lm, rm); acted {
			decisions = append(decisions, d)
		}
	}

	// Pass 2: find local-only records, absent from the remote set.
	for _, lm := range local {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, existsRemotely := remoteIndex[lm.RecordID]; existsRemotely {
			continue
		}

		if lm.Deleted {
			if lm.RemoteModifiedAt == nil {
				// Created and deleted locally before it was ever pushed.
				// The remote store never knew about it; purge the row.
				decisions = append(decisions, purge(lm))
				continue
			}
			// Previously synced tombstone the remote set no longer
			// carries: keep propagating it until the push lands.
			decisions = append(decisions, keepLocal(lm, nil))
			continue
		}

		// Live record that has never reached the remote store.
		decisions = append(decisions, keepLocal(lm, nil))
	}

	return decisions, nil
}

// resolvePair decides the fate of one identity present on both sides.
// The second return value is false when the two copies already agree and no
// decision is needed.
func (r *conflictResolver) resolvePair(lm, rm models.Measurement) (models.Resolution, bool) {
	switch {
	case lm.Deleted && rm.Deleted:
		// Both sides agree it is gone; the remote tombstone survives, the
		// local row can be purged.
		return purge(lm), true

	case rm.Deleted && !lm.Deleted:
		// A tombstone beats a live copy only when it is strictly newer;
		// otherwise the live local edit outlives the stale deletion.
		if rm.ModifiedAt().After(lm.ModifiedAt()) {
			return models.Resolution{
				RecordID: lm.RecordID,
				Local:    ptr(lm),
				Remote:   ptr(rm),
				Outcome:  models.OutcomeDelete,
			}, true
		}
		return keepLocal(lm, ptr(rm)), true

	case lm.Deleted && !rm.Deleted:
		// Mirror case: the local tombstone propagates unless the remote
		// copy was modified after this device last saw it.
		if rm.ModifiedAt().After(lm.ModifiedAt()) {
			return keepRemote(ptr(lm), rm), true
		}
		return keepLocal(lm, ptr(rm)), true
	}

	// Both copies are live.
	if measurementsEqual(lm, rm) {
		if lm.PendingUpload || lm.RemoteModifiedAt == nil || !lm.RemoteModifiedAt.Equal(rm.ModifiedAt()) {
			// Content matches but the local copy still carries a dirty
			// flag or a stale timestamp; adopt the remote copy to
			// converge without re-uploading identical data.
			return keepRemote(ptr(lm), rm), true
		}
		return models.Resolution{}, false
	}

	if vitalsEqual(lm, rm) {
		// Same reading, diverged confidence collections. Confidence is the
		// only mergeable field on this record shape: union both sides and
		// push the result.
		return merge(lm, rm), true
	}

	if r.remoteWins(lm, rm) {
		return keepRemote(ptr(lm), rm), true
	}
	return keepLocal(lm, ptr(rm)), true
}

// remoteWins applies the configured strategy to two diverged live copies.
func (r *conflictResolver) remoteWins(lm, rm models.Measurement) bool {
	switch r.strategy {
	case models.StrategyServer:
		return true
	case models.StrategyClient:
		return false
	case models.StrategyDevicePriority:
		lr, rr := r.deviceRank(lm.DeviceID), r.deviceRank(rm.DeviceID)
		if lr != rr {
			return rr < lr
		}
		// Both copies come from equally ranked devices; fall through to
		// the timestamp comparison.
	}
	// StrategyTimestamp: the later modification wins, ties go to the
	// local copy so a device never discards its own edit on a tie.
	return rm.ModifiedAt().After(lm.ModifiedAt())
}

func (r *conflictResolver) deviceRank(deviceID string) int {
	if rank, ok := r.rank[deviceID]; ok {
		return rank
	}
	return len(r.rank)
}

func keepLocal(lm models.Measurement, rm *models.Measurement) models.Resolution {
	winner := lm
	return models.Resolution{
		RecordID:    lm.RecordID,
		Local:       ptr(lm),
		Remote:      rm,
		Outcome:     models.OutcomeKeepLocal,
		Winner:      &winner,
		NeedsUpload: true,
	}
}

func keepRemote(lm *models.Measurement, rm models.Measurement) models.Resolution {
	winner := rm
	return models.Resolution{
		RecordID: rm.RecordID,
		Local:    lm,
		Remote:   ptr(rm),
		Outcome:  models.OutcomeKeepRemote,
		Winner:   &winner,
	}
}

// purge drops the local row for an identity whose tombstone has fully
// propagated.
func purge(lm models.Measurement) models.Resolution {
	return models.Resolution{
		RecordID: lm.RecordID,
		Local:    ptr(lm),
		Outcome:  models.OutcomeDelete,
	}
}

// merge unions the confidence collections of two copies of the same reading.
// The remote copy supplies the base record so its authoritative timestamp is
// retained; the merged record is flagged for upload so every device
// converges on the union.
func merge(lm, rm models.Measurement) models.Resolution {
	winner := rm
	winner.Confidence = unionConfidence(lm.Confidence, rm.Confidence)
	return models.Resolution{
		RecordID:    rm.RecordID,
		Local:       ptr(lm),
		Remote:      ptr(rm),
		Outcome:     models.OutcomeMerge,
		Winner:      &winner,
		NeedsUpload: true,
	}
}

// unionConfidence returns the sorted union of both confidence collections.
func unionConfidence(a, b []float64) []float64 {
	seen := make(map[float64]struct{}, len(a)+len(b))
	union := make([]float64, 0, len(a)+len(b))
	for _, vs := range [][]float64{a, b} {
		for _, v := range vs {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			union = append(union, v)
		}
	}
	sort.Float64s(union)
	return union
}

// vitalsEqual reports whether the two copies carry the same reading,
// ignoring the confidence collection and sync bookkeeping.
func vitalsEqual(a, b models.Measurement) bool {
	return a.TakenAt.Equal(b.TakenAt) &&
		a.Score == b.Score &&
		a.HeartRate == b.HeartRate &&
		a.HRV == b.HRV &&
		a.Category == b.Category &&
		a.DeviceID == b.DeviceID
}

func measurementsEqual(a, b models.Measurement) bool {
	if !vitalsEqual(a, b) || len(a.Confidence) != len(b.Confidence) {
		return false
	}
	for i := range a.Confidence {
		if a.Confidence[i] != b.Confidence[i] {
			return false
		}
	}
	return true
}

func ptr(m models.Measurement) *models.Measurement {
	return &m
}
