package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
	"github.com/sigap-app/sigap-backend/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with a stack trace, and collapses them to a 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stack := debug.Stack()

	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	zapLogger.Error("Panic recovered",
		logger.Err(err),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("stacktrace", string(stack)),
	)

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
