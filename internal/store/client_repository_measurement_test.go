package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pulse-keeper/internal/logger"
	"github.com/MKhiriev/pulse-keeper/models"
)

func newTestLocalRepo(t *testing.T) (*localMeasurementRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &localMeasurementRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func measurementColumns() []string {
	return []string{
		"record_id", "device_id", "taken_at", "score", "heart_rate", "hrv",
		"category", "confidence", "deleted", "pending_upload", "remote_modified_at",
	}
}

func TestLocalRepo_Save(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	m := models.Measurement{
		RecordID:   "rec-1",
		DeviceID:   "watch-1",
		TakenAt:    time.Unix(100, 0),
		Score:      42.5,
		HeartRate:  71,
		HRV:        55,
		Category:   models.CategoryMild,
		Confidence: []float64{0.9},
	}

	mock.ExpectExec("INSERT INTO measurements").
		WithArgs(m.RecordID, m.DeviceID, m.TakenAt, m.Score, m.HeartRate, m.HRV,
			string(m.Category), `[0.9]`, m.Deleted, m.PendingUpload, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepo_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMeasurementNotFound)
}

func TestLocalRepo_Get_DecodesConfidenceAndRemoteTime(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	modified := time.Unix(200, 0)
	rows := sqlmock.NewRows(measurementColumns()).
		AddRow("rec-1", "watch-1", time.Unix(100, 0), 42.5, 71.0, 55.0,
			"mild", `[0.9,0.8]`, false, true, modified)

	mock.ExpectQuery("SELECT").WithArgs("rec-1").WillReturnRows(rows)

	m, err := repo.Get(context.Background(), "rec-1")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.9, 0.8}, m.Confidence)
	require.NotNil(t, m.RemoteModifiedAt)
	assert.True(t, modified.Equal(*m.RemoteModifiedAt))
	assert.True(t, m.PendingUpload)
}

func TestLocalRepo_SoftDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE measurements").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMeasurementNotFound)
}

func TestLocalRepo_ApplyResolutions_Transactional(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	remote := models.Measurement{
		RecordID: "rec-2",
		DeviceID: "phone-1",
		TakenAt:  time.Unix(100, 0),
		Category: models.CategoryCalm,
	}

	decisions := []models.Resolution{
		{RecordID: "rec-1", Outcome: models.OutcomeDelete},
		{RecordID: "rec-2", Outcome: models.OutcomeKeepRemote, Winner: &remote},
		{RecordID: "rec-3", Outcome: models.OutcomeKeepLocal, NeedsUpload: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM measurements").
		WithArgs("rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO measurements").
		WithArgs("rec-2", "phone-1", remote.TakenAt, 0.0, 0.0, 0.0,
			"calm", "[]", false, false, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE measurements").
		WithArgs("rec-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ApplyResolutions(context.Background(), decisions))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepo_ApplyResolutions_RollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	decisions := []models.Resolution{
		{RecordID: "rec-1", Outcome: models.OutcomeDelete},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM measurements").
		WithArgs("rec-1").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ApplyResolutions(context.Background(), decisions)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepo_Fetch_BuildsPredicates(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	from := time.Unix(50, 0)
	rows := sqlmock.NewRows(measurementColumns())

	// squirrel renders the IN clause for record IDs plus the range and
	// deleted predicates.
	mock.ExpectQuery("SELECT .+ FROM measurements").
		WithArgs("rec-1", "rec-2", from, false).
		WillReturnRows(rows)

	got, err := repo.Fetch(context.Background(), MeasurementFilter{
		RecordIDs: []string{"rec-1", "rec-2"},
		From:      &from,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
