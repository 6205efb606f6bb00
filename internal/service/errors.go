package service

import "errors"

var (
	ErrSyncInProgress  = errors.New("a sync pass is already in flight")
	ErrUnknownStrategy = errors.New("unknown conflict-resolution strategy")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongSecret         = errors.New("wrong device secret")
	ErrDeviceQuotaExceeded = errors.New("device measurement quota exceeded")
	ErrInvalidCursor       = errors.New("malformed exchange cursor")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
