package models

import "time"

// VitalSample is one raw sensor reading before scoring. The recording
// pipeline turns a sample into a Measurement.
type VitalSample struct {
	TakenAt   time.Time `json:"taken_at"`
	HeartRate float64   `json:"heart_rate"`
	HRV       float64   `json:"hrv"`
}
