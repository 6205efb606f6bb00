// Package utils provides general-purpose helpers shared across the
// application: context keys, JSON response writing, JWT issuing and
// validation, and record-identity generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with other packages storing string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey is the key under which the authenticated device identifier
// is stored in a request context by the auth middleware.
var DeviceIDCtxKey = contextKey("deviceID")

// GetDeviceIDFromContext retrieves the device identifier placed in ctx by
// the auth middleware. The second return value reports whether a value of
// the expected type was present.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok
}
