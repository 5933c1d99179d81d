package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wibowo/kurir/internal/pkg/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPreferenceRepo_GetNavigationPreference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferenceRepo(db)

	driverID := uuid.New()
	updatedAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery(`SELECT driver_id, app, updated_at FROM nav_preferences`).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "app", "updated_at"}).
			AddRow(driverID, "waze", updatedAt))

	pref, err := repo.GetNavigationPreference(context.Background(), driverID)

	require.NoError(t, err)
	assert.Equal(t, driverID, pref.DriverID)
	assert.Equal(t, models.NavAppWaze, pref.App)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_GetNavigationPreference_DefaultsToInApp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferenceRepo(db)

	driverID := uuid.New()

	mock.ExpectQuery(`SELECT driver_id, app, updated_at FROM nav_preferences`).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "app", "updated_at"}))

	pref, err := repo.GetNavigationPreference(context.Background(), driverID)

	// A driver who never chose gets the in-app map, not an error.
	require.NoError(t, err)
	assert.Equal(t, models.NavAppInApp, pref.App)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_UpsertNavigationPreference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferenceRepo(db)

	driverID := uuid.New()

	mock.ExpectExec(`INSERT INTO nav_preferences`).
		WithArgs(driverID, models.NavAppGoogleMaps).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertNavigationPreference(context.Background(), driverID, models.NavAppGoogleMaps)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_InsertNavigationEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPreferenceRepo(db)

	event := &models.NavEvent{
		EventID:   uuid.New(),
		DriverID:  uuid.New(),
		TripID:    uuid.New(),
		App:       models.NavAppWaze,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(`INSERT INTO nav_events`).
		WithArgs(event.EventID, event.DriverID, event.TripID, event.App, event.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertNavigationEvent(context.Background(), event)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
