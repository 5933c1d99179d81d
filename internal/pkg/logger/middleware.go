package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request-logging middleware for Echo using the
// application logger.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			// Get driver ID if the auth middleware set one
			driverID := "anonymous"
			if v := c.Get("driver_id"); v != nil {
				driverID = fmt.Sprintf("%v", v)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			entry := logger.WithFields(map[string]interface{}{
				"status":     statusCode,
				"latency":    latency.String(),
				"latency_ms": latency.Milliseconds(),
				"client_ip":  clientIP,
				"method":     method,
				"path":       path,
				"driver_id":  driverID,
				"request_id": requestID,
			})

			// Log with appropriate level based on status code
			switch {
			case statusCode >= 500:
				if err != nil {
					entry.Error("Server error", Err(err))
				} else {
					entry.Error("Server error")
				}
			case statusCode >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
