package models

import "time"

// SyncPhase is the observable state of the sync orchestrator.
type SyncPhase string

const (
	SyncIdle        SyncPhase = "idle"
	SyncSyncing     SyncPhase = "syncing"
	SyncSuccess     SyncPhase = "success"
	SyncError       SyncPhase = "error"
	SyncUnavailable SyncPhase = "unavailable"
)

// UnavailableReason explains why synchronization cannot run at all. These
// conditions are not retriable until the environment changes, so the UI is
// expected to render them as a persistent banner rather than a transient
// error.
type UnavailableReason string

const (
	ReasonNoConnectivity  UnavailableReason = "no_connectivity"
	ReasonSignedOut       UnavailableReason = "account_signed_out"
	ReasonServiceDisabled UnavailableReason = "service_disabled"
	ReasonQuotaExceeded   UnavailableReason = "quota_exceeded"
)

// AccountStatus is the remote account availability reported by the remote
// sync engine before any exchange is attempted.
type AccountStatus string

const (
	AccountAvailable  AccountStatus = "available"
	AccountNoAccount  AccountStatus = "no_account"
	AccountRestricted AccountStatus = "restricted"
	AccountUnknown    AccountStatus = "unknown"
)

// SyncStatus is the single externally observable signal of orchestrator
// state. Progress is only meaningful while Phase is SyncSyncing and lies in
// [0,1]. Reason is only set for SyncUnavailable, Err only for SyncError.
type SyncStatus struct {
	Phase    SyncPhase
	Progress float64
	Reason   UnavailableReason
	Err      error
}

// SyncReport summarizes one completed sync pass.
type SyncReport struct {
	Resolved   int
	Uploaded   int
	Deleted    int
	FinishedAt time.Time
}
