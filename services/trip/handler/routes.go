package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/wibowo/kurir/internal/pkg/middleware"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/services/trip"
	httphandler "github.com/wibowo/kurir/services/trip/handler/http"
)

// RegisterRoutes mounts the driver trip API under /v1, guarded by the
// driver auth middleware.
func RegisterRoutes(e *echo.Echo, tripUC trip.TripUC, jwtConfig models.JWTConfig) {
	h := httphandler.NewTripHandler(tripUC)

	v1 := e.Group("/v1", middleware.DriverAuthMiddleware(jwtConfig))

	v1.POST("/trip/session", h.StartSession)
	v1.DELETE("/trip/session", h.EndSession)
	v1.GET("/trip/active", h.GetActive)
	v1.POST("/trip/:id/advance", h.Advance)
	v1.POST("/trip/:id/swipe", h.Swipe)
	v1.POST("/trip/:id/complete/confirm", h.ConfirmCompletion)
	v1.POST("/trip/location", h.PushLocation)

	v1.GET("/preferences/navigation", h.GetNavigationPreference)
	v1.PUT("/preferences/navigation", h.UpdateNavigationPreference)
	v1.POST("/telemetry/navigation", h.RecordNavigationChoice)
}
