package models

import "time"

// Device is a registered measurement source known to the hub. SecretHash is
// the argon2id digest of the device secret; the plaintext is never stored.
type Device struct {
	ID         int64     `json:"id" db:"id"`
	DeviceID   string    `json:"device_id" db:"device_id"`
	Name       string    `json:"name" db:"name"`
	SecretHash string    `json:"-" db:"secret_hash"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
