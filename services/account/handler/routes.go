package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/services/account/handler/http"
)

// Handler coordinates the HTTP handlers for the account service
type Handler struct {
	accountHandler *http.AccountHandler
	otpHandler     *http.OTPHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	accountHandler *http.AccountHandler,
	otpHandler *http.OTPHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		accountHandler: accountHandler,
		otpHandler:     otpHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the account service routes. The optional
// otpRateLimiter guards /send-otp when Redis is configured.
func (h *Handler) RegisterRoutes(e *echo.Echo, otpRateLimiter echo.MiddlewareFunc) {
	e.POST("/register", h.accountHandler.Register)

	if otpRateLimiter != nil {
		e.POST("/send-otp", h.otpHandler.SendOTP, otpRateLimiter)
	} else {
		e.POST("/send-otp", h.otpHandler.SendOTP)
	}

	e.POST("/verify-otp", h.otpHandler.VerifyOTP)
}
