package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns a request ID to every request, reusing the
// caller's X-Request-ID when it supplies one. The ID is echoed in the
// response header and placed in the request context so outbound platform
// calls can forward it.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			ctx := context.WithValue(c.Request().Context(), "request_id", requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
