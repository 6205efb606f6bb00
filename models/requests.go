package models

import "time"

// ExchangeRequest is the device-to-hub sync payload: every local record
// flagged for upload plus the change cursor returned by the previous
// exchange. An empty cursor asks the hub for the full record set.
type ExchangeRequest struct {
	DeviceID     string        `json:"device_id"`
	Measurements []Measurement `json:"measurements"`
	Cursor       string        `json:"cursor,omitempty"`
	Length       int           `json:"length"`
}

// ExchangeResponse carries back the hub-side records the device should
// reconcile, with their authoritative modification timestamps set, and the
// next change cursor.
type ExchangeResponse struct {
	Measurements []Measurement `json:"measurements"`
	Cursor       string        `json:"cursor"`
	Length       int           `json:"length"`
}

// AccountStatusResponse reports remote account availability.
type AccountStatusResponse struct {
	Status AccountStatus `json:"status"`
}

// SubscribeRequest registers a device for remote-change wake-up
// notifications.
type SubscribeRequest struct {
	DeviceID string `json:"device_id"`
	Endpoint string `json:"endpoint"`
}

// RegisterDeviceRequest creates or authenticates a device on the hub.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id"`
	Secret   string `json:"secret"`
	Name     string `json:"name,omitempty"`
}

// DeviceSession is the hub's answer to a successful register or login.
type DeviceSession struct {
	DeviceID  string    `json:"device_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
