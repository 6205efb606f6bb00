// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createLocalSchema = `
		CREATE TABLE IF NOT EXISTS measurements (
			record_id          TEXT PRIMARY KEY,
			device_id          TEXT NOT NULL,
			taken_at           TIMESTAMP NOT NULL,
			score              REAL NOT NULL,
			heart_rate         REAL NOT NULL,
			hrv                REAL NOT NULL,
			category           TEXT NOT NULL,
			confidence         TEXT NOT NULL DEFAULT '[]',
			deleted            BOOLEAN NOT NULL DEFAULT FALSE,
			pending_upload     BOOLEAN NOT NULL DEFAULT FALSE,
			remote_modified_at TIMESTAMP NULL
		);
		CREATE INDEX IF NOT EXISTS idx_measurements_taken_at ON measurements (taken_at);
		CREATE INDEX IF NOT EXISTS idx_measurements_pending ON measurements (pending_upload);`

	upsertMeasurement = `
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
			pending_upload,
			remote_modified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (record_id) DO UPDATE SET
			device_id          = excluded.device_id,
			taken_at           = excluded.taken_at,
			score              = excluded.score,
			heart_rate         = excluded.heart_rate,
			hrv                = excluded.hrv,
			category           = excluded.category,
			confidence         = excluded.confidence,
			deleted            = excluded.deleted,
			pending_upload     = excluded.pending_upload,
			remote_modified_at = excluded.remote_modified_at;`

	getSingleMeasurement = `
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
			pending_upload,
			remote_modified_at
		FROM measurements
		WHERE record_id = $1;`

	getAllMeasurements = `
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
			pending_upload,
			remote_modified_at
		FROM measurements
		WHERE deleted = FALSE;`

	getAllMeasurementsWithDeleted = `
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
			pending_upload,
			remote_modified_at
		FROM measurements;`

	getPendingUploadMeasurements = `
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
			pending_upload,
			remote_modified_at
		FROM measurements
		WHERE pending_upload = TRUE;`

	clearPendingUpload = `
		UPDATE measurements
		SET pending_upload = FALSE
		WHERE record_id = $1;`

	softDeleteMeasurement = `
		UPDATE measurements
		SET deleted = TRUE,
		    pending_upload = TRUE
		WHERE record_id = $1;`

	deleteMeasurement = `
		DELETE FROM measurements
		WHERE record_id = $1;`

	deleteAllMeasurements = `
		DELETE FROM measurements;`

	markPendingUpload = `
		UPDATE measurements
		SET pending_upload = TRUE
		WHERE record_id = $1;`
)
