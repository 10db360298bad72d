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

// AccountHandler handles HTTP requests for account registration
type AccountHandler struct {
	accountUC account.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC account.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// Register handles account registration requests
func (h *AccountHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	// Reject before any platform call when any field rule fails
	if violations := utils.ValidateRegisterRequest(&req); len(violations) > 0 {
		return utils.ValidationErrorResponse(c, violations)
	}

	if err := h.accountUC.Register(c.Request().Context(), &req); err != nil {
		if errors.Is(err, account.ErrEmailRegistered) {
			return utils.BadRequestResponse(c, "Email is already registered.")
		}
		if errors.Is(err, account.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}

		logger.Error("Failed to register account",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK,
		"Registration successful. Please verify your phone number to activate your account.", nil)
}
