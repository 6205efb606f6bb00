package adapter

import "errors"

// Typed failures surfaced by the remote sync engine. Availability faults
// (connectivity, sign-in, service, quota) map to an Unavailable status in
// the orchestrator; the rest are transient operation faults.
var (
	ErrNoConnectivity  = errors.New("no connectivity to remote store")
	ErrSignedOut       = errors.New("account signed out")
	ErrServiceDisabled = errors.New("remote service disabled")
	ErrQuotaExceeded   = errors.New("remote quota exceeded")
	ErrRateLimited     = errors.New("remote store rate limited")
	ErrRecordNotFound  = errors.New("remote record not found")
	ErrExchangeFailed  = errors.New("remote exchange failed")
)
