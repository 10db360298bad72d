package account

import (
	"context"

	"github.com/sigap-app/sigap-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sigap-app/sigap-backend/services/account AccountUC

// AccountUC represents the account usecase interface
type AccountUC interface {
	// Register creates a new account after checking for a duplicate email
	Register(ctx context.Context, req *models.RegisterRequest) error

	// handle OTP
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, token string) error
}
