// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createDevice = `
		INSERT INTO devices (device_id, name, secret_hash)
		VALUES ($1, $2, $3)
		RETURNING id, device_id, name, secret_hash, created_at;`

	findDeviceByDeviceID = `
		SELECT id, device_id, name, secret_hash, created_at
		FROM devices
		WHERE device_id = $1;`

	upsertHubMeasurement = `
		INSERT INTO measurements (
			record_id,
			device_id,
			taken_at,
			score,
			heart_rate,
			hrv,
			category,
			confidence,
			deleted,
			modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (record_id) DO UPDATE SET
			device_id   = excluded.device_id,
			taken_at    = excluded.taken_at,
			score       = excluded.score,
			heart_rate  = excluded.heart_rate,
			hrv         = excluded.hrv,
			category    = excluded.category,
			confidence  = excluded.confidence,
			deleted     = excluded.deleted,
			modified_at = NOW();`

	listMeasurementsModifiedSince = `
		SELECT
			record_id,
			device_id,
			taken_at,
			score,
			heart_rate,
			hrv,
			category,
			confidence,
			deleted,
			modified_at
		FROM measurements
		WHERE modified_at > $1
		ORDER BY modified_at;`

	countLiveMeasurements = `
		SELECT COUNT(*)
		FROM measurements
		WHERE device_id = $1 AND deleted = FALSE;`
)
