package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/models"
)

// SessionRepo defines the interface for per-driver session state in Redis
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/wibowo/kurir/services/trip SessionRepo,PreferenceRepo
type SessionRepo interface {
	// SaveFix stores the driver's latest GPS fix and refreshes the
	// live-driver geo index. Last-write-wins, bounded by a TTL.
	SaveFix(ctx context.Context, driverID uuid.UUID, fix models.GpsSnapshot) error
	LastFix(ctx context.Context, driverID uuid.UUID) (*models.GpsSnapshot, error)

	// CacheTrip keeps the last polled trip available to reads between
	// poll cycles and across instances.
	CacheTrip(ctx context.Context, driverID uuid.UUID, trip *models.ActiveTrip) error
	CachedTrip(ctx context.Context, driverID uuid.UUID) (*models.ActiveTrip, error)
	ClearTrip(ctx context.Context, driverID uuid.UUID) error
}

// PreferenceRepo defines the interface for driver preferences and
// navigation telemetry in PostgreSQL
type PreferenceRepo interface {
	// GetNavigationPreference returns the stored preference, defaulting
	// to the in-app map when the driver has never set one.
	GetNavigationPreference(ctx context.Context, driverID uuid.UUID) (*models.NavPreference, error)
	UpsertNavigationPreference(ctx context.Context, driverID uuid.UUID, app models.NavApp) error
	InsertNavigationEvent(ctx context.Context, event *models.NavEvent) error
}
