package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/internal/utils"
	"github.com/sigap-app/sigap-backend/services/account"
)

// OTPHandler handles HTTP requests for phone verification
type OTPHandler struct {
	accountUC account.AccountUC
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(accountUC account.AccountUC) *OTPHandler {
	return &OTPHandler{
		accountUC: accountUC,
	}
}

// SendOTP handles OTP dispatch requests
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	if err := h.accountUC.SendOTP(c.Request().Context(), req.Phone); err != nil {
		if errors.Is(err, account.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}

		logger.Error("Failed to send OTP",
			logger.ErrorField(err),
			logger.String("phone", req.Phone),
		)
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification requests
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Phone == "" || req.Token == "" {
		return utils.BadRequestResponse(c, "Phone number and token are required")
	}

	if err := h.accountUC.VerifyOTP(c.Request().Context(), req.Phone, req.Token); err != nil {
		if errors.Is(err, account.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}

		// Wrong codes, expired codes, and flag-update failures all collapse
		// to a 500; the detail stays in the server log.
		logger.Error("Failed to verify OTP",
			logger.ErrorField(err),
			logger.String("phone", req.Phone),
		)
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Phone number verified successfully", nil)
}
