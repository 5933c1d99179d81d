package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/wibowo/kurir/internal/pkg/models"
)

// PreferenceRepo implements trip.PreferenceRepo on PostgreSQL.
type PreferenceRepo struct {
	db *sqlx.DB
}

// NewPreferenceRepo creates a new PostgreSQL-backed preference repository.
func NewPreferenceRepo(db *sqlx.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetNavigationPreference returns the stored preference. A driver who has
// never chosen gets the in-app map, not an error.
func (r *PreferenceRepo) GetNavigationPreference(ctx context.Context, driverID uuid.UUID) (*models.NavPreference, error) {
	var pref models.NavPreference
	query := `SELECT driver_id, app, updated_at FROM nav_preferences WHERE driver_id = $1`

	err := r.db.GetContext(ctx, &pref, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.NavPreference{
			DriverID:  driverID,
			App:       models.NavAppInApp,
			UpdatedAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get navigation preference: %w", err)
	}
	return &pref, nil
}

// UpsertNavigationPreference stores the driver's navigation app choice.
func (r *PreferenceRepo) UpsertNavigationPreference(ctx context.Context, driverID uuid.UUID, app models.NavApp) error {
	query := `
		INSERT INTO nav_preferences (driver_id, app, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (driver_id)
		DO UPDATE SET app = EXCLUDED.app, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, driverID, app); err != nil {
		return fmt.Errorf("failed to upsert navigation preference: %w", err)
	}
	return nil
}

// InsertNavigationEvent records a navigation-app launch for a trip.
func (r *PreferenceRepo) InsertNavigationEvent(ctx context.Context, event *models.NavEvent) error {
	query := `
		INSERT INTO nav_events (event_id, driver_id, trip_id, app, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query,
		event.EventID, event.DriverID, event.TripID, event.App, event.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert navigation event: %w", err)
	}
	return nil
}
