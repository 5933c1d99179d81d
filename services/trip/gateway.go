package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/wibowo/kurir/internal/pkg/models"
)

// TripGW defines the interface for the platform trip API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/wibowo/kurir/services/trip TripGW
type TripGW interface {
	// FetchActiveTrip returns the driver's current assignment, or nil when
	// the driver holds none. A nil trip with a nil error is the valid
	// "no active trip" state, not a failure.
	FetchActiveTrip(ctx context.Context, driverID uuid.UUID) (*models.ActiveTrip, error)

	// SubmitTransition submits a status change for the trip. The request
	// carries completion-location evidence only for the terminal status.
	SubmitTransition(ctx context.Context, driverID, tripID uuid.UUID, req models.TransitionRequest) error

	// PublishNavigationChoice forwards a navigation-app choice to the
	// platform telemetry endpoint.
	PublishNavigationChoice(ctx context.Context, event *models.NavEvent) error
}
