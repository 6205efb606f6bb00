package models

import "time"

// StressCategory is the coarse classification assigned to a measurement by
// the scoring transform. The sync core treats it as opaque enumerated data.
type StressCategory string

const (
	CategoryCalm     StressCategory = "calm"
	CategoryMild     StressCategory = "mild"
	CategoryElevated StressCategory = "elevated"
	CategoryAcute    StressCategory = "acute"
)

// Measurement is the unit of synchronization: one completed stress reading.
//
// RecordID is assigned once at creation and never changes; it is the key used
// to match local and remote copies of the same reading. TakenAt, Score,
// HeartRate, HRV and Category are set at creation and never mutated in
// place: a correction is a new record plus a soft delete of the old one.
type Measurement struct {
	RecordID   string         `json:"record_id" db:"record_id"`
	DeviceID   string         `json:"device_id" db:"device_id"`
	TakenAt    time.Time      `json:"taken_at" db:"taken_at"`
	Score      float64        `json:"score" db:"score"`
	HeartRate  float64        `json:"heart_rate" db:"heart_rate"`
	HRV        float64        `json:"hrv" db:"hrv"`
	Category   StressCategory `json:"category" db:"category"`
	Confidence []float64      `json:"confidence,omitempty" db:"confidence"`

	// Deleted marks the record as a tombstone: it is retained locally and
	// remotely so the deletion propagates to every device.
	Deleted bool `json:"deleted" db:"deleted"`

	// PendingUpload is a local-only dirty marker. It is set when the record
	// is created and when a conflict decision keeps or merges the local copy,
	// and cleared after the record has been pushed to the remote store.
	// It never travels over the wire.
	PendingUpload bool `json:"-" db:"pending_upload"`

	// RemoteModifiedAt is the remote store's modification timestamp.
	// Nil until the record has been synced at least once.
	RemoteModifiedAt *time.Time `json:"remote_modified_at,omitempty" db:"remote_modified_at"`
}

// ModifiedAt returns the instant used for conflict comparison: the remote
// modification timestamp when known, otherwise the zero time so that a
// never-synced copy always loses to a synced one under the timestamp
// strategy.
func (m Measurement) ModifiedAt() time.Time {
	if m.RemoteModifiedAt != nil {
		return *m.RemoteModifiedAt
	}
	return time.Time{}
}
