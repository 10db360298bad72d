package account

import (
	"context"

	"github.com/sigap-app/sigap-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sigap-app/sigap-backend/services/account AccountGW

// AccountGW is the gateway to the hosted data/auth platform, consumed as
// two capabilities: the account record store and the phone OTP channel.
type AccountGW interface {
	// record store
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	MarkPhoneVerified(ctx context.Context, phone string) error

	// OTP channel
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, token string) error
}
