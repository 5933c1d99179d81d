package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/wibowo/kurir/internal/pkg/middleware"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/internal/utils"
	"github.com/wibowo/kurir/services/trip"
)

// TripHandler exposes the active-trip session API to the device UI.
type TripHandler struct {
	tripUC trip.TripUC
}

// NewTripHandler creates a new trip HTTP handler.
func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

func (h *TripHandler) driverID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.DriverID(c)
	if !ok {
		return uuid.Nil, utils.UnauthorizedResponse(c, "")
	}
	return id, nil
}

func (h *TripHandler) tripID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, utils.BadRequestResponse(c, "Invalid trip id")
	}
	return id, nil
}

// mapError translates usecase sentinels to HTTP responses.
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, trip.ErrNoSession), errors.Is(err, trip.ErrNoActiveTrip):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, trip.ErrTripMismatch),
		errors.Is(err, trip.ErrSubmissionInFlight),
		errors.Is(err, trip.ErrConfirmationPending):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, trip.ErrNoNextAction),
		errors.Is(err, trip.ErrSwipeRequired),
		errors.Is(err, trip.ErrSwipeNotApplicable),
		errors.Is(err, trip.ErrNoPendingConfirmation),
		errors.Is(err, trip.ErrInvalidNavApp):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "")
	}
}

// StartSession mounts the trip session for the authenticated driver.
func (h *TripHandler) StartSession(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}
	if err := h.tripUC.StartSession(c.Request().Context(), driverID); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session started", nil)
}

// EndSession unmounts the trip session.
func (h *TripHandler) EndSession(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}
	if err := h.tripUC.EndSession(c.Request().Context(), driverID); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session ended", nil)
}

// GetActive returns the session snapshot. A session is mounted on demand
// so a device that restarted mid-trip recovers with a single call.
func (h *TripHandler) GetActive(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	snap, err := h.tripUC.SessionSnapshot(ctx, driverID)
	if errors.Is(err, trip.ErrNoSession) {
		if err := h.tripUC.StartSession(ctx, driverID); err != nil {
			return mapError(c, err)
		}
		snap, err = h.tripUC.SessionSnapshot(ctx, driverID)
	}
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snap)
}

// Advance performs the next button transition for the trip.
func (h *TripHandler) Advance(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}
	tripID, err := h.tripID(c)
	if err != nil {
		return err
	}

	if err := h.tripUC.Advance(c.Request().Context(), driverID, tripID); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

type swipeRequest struct {
	Progress float64 `json:"progress"`
	Released bool    `json:"released"`
}

// Swipe feeds a gesture event for the terminal transition.
func (h *TripHandler) Swipe(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}
	tripID, err := h.tripID(c)
	if err != nil {
		return err
	}

	var req swipeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ctx := c.Request().Context()
	var state models.SwipeState
	if req.Released {
		state, err = h.tripUC.SwipeRelease(ctx, driverID, tripID, req.Progress)
	} else {
		state, err = h.tripUC.SwipeProgress(ctx, driverID, tripID, req.Progress)
	}
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", state)
}

type confirmRequest struct {
	Accepted bool `json:"accepted"`
}

// ConfirmCompletion answers the pending completion confirmation.
func (h *TripHandler) ConfirmCompletion(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}
	tripID, err := h.tripID(c)
	if err != nil {
		return err
	}

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.tripUC.ResolveCompletion(c.Request().Context(), driverID, tripID, req.Accepted); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Confirmation recorded", nil)
}

// PushLocation records a device GPS fix.
func (h *TripHandler) PushLocation(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}

	var fix models.GpsSnapshot
	if err := c.Bind(&fix); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if fix.Latitude < -90 || fix.Latitude > 90 || fix.Longitude < -180 || fix.Longitude > 180 {
		return utils.BadRequestResponse(c, "Coordinates out of range")
	}

	if err := h.tripUC.PushLocation(c.Request().Context(), driverID, fix); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}
