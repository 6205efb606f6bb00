package models

// ResolutionOutcome is the decision made for one record identity that
// appears locally, remotely, or on both sides during a sync pass.
type ResolutionOutcome string

const (
	// OutcomeKeepLocal keeps the local copy and schedules it for upload.
	OutcomeKeepLocal ResolutionOutcome = "keep_local"
	// OutcomeKeepRemote writes the remote copy over the local one.
	OutcomeKeepRemote ResolutionOutcome = "keep_remote"
	// OutcomeMerge keeps a synthesized record combining both copies and
	// schedules it for upload. Only the confidence collection is mergeable
	// for this record shape.
	OutcomeMerge ResolutionOutcome = "merge"
	// OutcomeDelete propagates a tombstone: the record is removed locally
	// and stays soft-deleted remotely.
	OutcomeDelete ResolutionOutcome = "delete"
)

// ResolutionStrategy selects the winner when the same identity has diverged
// local and remote copies.
type ResolutionStrategy string

const (
	// StrategyTimestamp picks the copy with the later remote modification
	// timestamp; the local copy wins ties.
	StrategyTimestamp ResolutionStrategy = "timestamp"
	// StrategyServer always keeps the remote copy, e.g. after a restore.
	StrategyServer ResolutionStrategy = "server"
	// StrategyClient always keeps the local copy, e.g. after an
	// authoritative local correction.
	StrategyClient ResolutionStrategy = "client"
	// StrategyDevicePriority breaks ties by a configured ranking of device
	// identifiers.
	StrategyDevicePriority ResolutionStrategy = "device_priority"
)

// Resolution is one per-identity decision produced during a sync pass. It is
// ephemeral: produced fresh each pass, applied immediately, never persisted.
//
// Winner is the surviving record; nil when Outcome is OutcomeDelete.
// NeedsUpload reports whether the surviving record must be pushed back to
// the remote store (true for keep-local and merge outcomes).
type Resolution struct {
	RecordID    string
	Local       *Measurement
	Remote      *Measurement
	Outcome     ResolutionOutcome
	Winner      *Measurement
	NeedsUpload bool
}
