package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/models"
)

// TripUC defines the interface for active-trip session business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/wibowo/kurir/services/trip TripUC
type TripUC interface {
	// Session lifecycle, mirroring the device's trip screen mount/unmount.
	StartSession(ctx context.Context, driverID uuid.UUID) error
	EndSession(ctx context.Context, driverID uuid.UUID) error
	SessionSnapshot(ctx context.Context, driverID uuid.UUID) (*models.SessionSnapshot, error)

	// Status transitions.
	Advance(ctx context.Context, driverID, tripID uuid.UUID) error
	SwipeProgress(ctx context.Context, driverID, tripID uuid.UUID, progress float64) (models.SwipeState, error)
	SwipeRelease(ctx context.Context, driverID, tripID uuid.UUID, progress float64) (models.SwipeState, error)
	ResolveCompletion(ctx context.Context, driverID, tripID uuid.UUID, accepted bool) error

	// Device location feed.
	PushLocation(ctx context.Context, driverID uuid.UUID, fix models.GpsSnapshot) error

	// Navigation preference and telemetry.
	NavigationPreference(ctx context.Context, driverID uuid.UUID) (*models.NavPreference, error)
	UpdateNavigationPreference(ctx context.Context, driverID uuid.UUID, app models.NavApp) error
	RecordNavigationChoice(ctx context.Context, driverID, tripID uuid.UUID, app models.NavApp) error
}
