package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/wibowo/kurir/internal/pkg/jwt"
	"github.com/wibowo/kurir/internal/pkg/models"
	"github.com/wibowo/kurir/internal/utils"
)

// DriverAuthMiddleware creates a middleware that validates the driver's
// bearer token and stores the driver id on the request context.
func DriverAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			driverIDClaim, ok := (*claims)["driver_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing driver_id claim")
			}

			driverIDStr, ok := driverIDClaim.(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: malformed driver_id claim")
			}

			driverID, err := uuid.Parse(driverIDStr)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: driver_id is not a valid UUID")
			}

			if role, ok := (*claims)["role"]; !ok || role != "driver" {
				return utils.UnauthorizedResponse(c, "Invalid token: driver role required")
			}

			c.Set("driver_id", driverID)
			return next(c)
		}
	}
}

// DriverID extracts the authenticated driver id from the Echo context.
func DriverID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("driver_id").(uuid.UUID)
	return id, ok
}
