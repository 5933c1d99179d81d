package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	httpclient "github.com/wibowo/kurir/internal/pkg/http"
	"github.com/wibowo/kurir/internal/pkg/logger"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
	"github.com/wibowo/kurir/services/trip/lifecycle"
)

// submitter pushes status transitions to the platform. At most one
// submission is in flight per session; duplicates are rejected before any
// network traffic. Location evidence rides along only on the terminal
// transition, and only when a fix was actually captured during the trip.
type submitter struct {
	gateway  trip.TripGW
	haptics  trip.Haptics
	notifier trip.Notifier
	inFlight atomic.Bool
}

func newSubmitter(gateway trip.TripGW, haptics trip.Haptics, notifier trip.Notifier) *submitter {
	return &submitter{
		gateway:  gateway,
		haptics:  haptics,
		notifier: notifier,
	}
}

// Submit sends the transition and surfaces the outcome through the device
// ports. The returned error is trip.ErrSubmissionInFlight when another
// submission has not resolved yet.
func (s *submitter) Submit(ctx context.Context, driverID, tripID uuid.UUID, next models.TripStatus, fix *models.GpsSnapshot) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return trip.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	req := models.TransitionRequest{Status: next}
	if next == models.TripStatusCompleted && fix != nil {
		req.CompletionLocation = fix
	}

	if err := s.gateway.SubmitTransition(ctx, driverID, tripID, req); err != nil {
		logger.Error("status transition rejected",
			logger.String("driver_id", driverID.String()),
			logger.String("trip_id", tripID.String()),
			logger.String("next_status", string(next)),
			logger.Err(err))
		s.haptics.Pulse(trip.HapticHeavy)
		s.notifier.Error(transitionErrorMessage(err))
		return err
	}

	logger.Info("status transition accepted",
		logger.String("driver_id", driverID.String()),
		logger.String("trip_id", tripID.String()),
		logger.String("next_status", string(next)))
	s.haptics.Pulse(trip.HapticMedium)
	s.notifier.Success(lifecycle.TransitionMessage(next))
	return nil
}

// transitionErrorMessage prefers the backend's own rejection reason over
// the generic retry prompt.
func transitionErrorMessage(err error) string {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return "Failed to update status. Please try again."
}

// Busy reports whether a submission is currently in flight.
func (s *submitter) Busy() bool {
	return s.inFlight.Load()
}
