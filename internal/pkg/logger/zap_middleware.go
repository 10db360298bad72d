package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
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

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get request ID
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			// Log the HTTP request using our Zap logger
			logger.LogHTTPRequest(method, path, clientIP, requestID, statusCode, latency, err)

			return err
		}
	}
}
