package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/internal/utils"
)

// GetNavigationPreference returns the driver's preferred navigation app.
func (h *TripHandler) GetNavigationPreference(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}

	pref, err := h.tripUC.NavigationPreference(c.Request().Context(), driverID)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pref)
}

type preferenceRequest struct {
	App models.NavApp `json:"app"`
}

// UpdateNavigationPreference stores a new preferred navigation app.
func (h *TripHandler) UpdateNavigationPreference(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}

	var req preferenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.tripUC.UpdateNavigationPreference(c.Request().Context(), driverID, req.App); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Preference updated", nil)
}

type navTelemetryRequest struct {
	TripID uuid.UUID     `json:"trip_id"`
	App    models.NavApp `json:"app"`
}

// RecordNavigationChoice logs which navigation app the driver launched.
func (h *TripHandler) RecordNavigationChoice(c echo.Context) error {
	driverID, err := h.driverID(c)
	if err != nil {
		return err
	}

	var req navTelemetryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.TripID == uuid.Nil {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	if err := h.tripUC.RecordNavigationChoice(c.Request().Context(), driverID, req.TripID, req.App); err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Navigation choice recorded", nil)
}
