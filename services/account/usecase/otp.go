package usecase

import (
	"context"
	"fmt"

	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
	"github.com/sigap-app/sigap-backend/internal/utils"
	"github.com/sigap-app/sigap-backend/services/account"
)

// SendOTP asks the platform to dispatch a one-time code to the given phone
// via SMS. The account record is not touched.
func (u *AccountUC) SendOTP(ctx context.Context, phone string) error {
	valid, formattedPhone := utils.ValidatePhone(phone)
	if !valid {
		return account.ErrInvalidPhone
	}

	if err := u.accountGW.SendOTP(ctx, formattedPhone); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	logger.Info("OTP dispatch requested",
		logger.String("phone", formattedPhone))

	return nil
}

// VerifyOTP asks the platform to validate the (phone, token) pair and, on
// success, flips the verification flag on the matching account record.
// When the flag update fails after a successful validation the platform may
// already consider the code consumed while the record remains unverified;
// that inconsistency is logged and surfaced as a plain failure.
func (u *AccountUC) VerifyOTP(ctx context.Context, phone, token string) error {
	valid, formattedPhone := utils.ValidatePhone(phone)
	if !valid {
		return account.ErrInvalidPhone
	}

	if err := u.accountGW.VerifyOTP(ctx, formattedPhone, token); err != nil {
		// Wrong and expired codes surface identically
		return fmt.Errorf("OTP verification rejected: %w", err)
	}

	if err := u.accountGW.MarkPhoneVerified(ctx, formattedPhone); err != nil {
		logger.Error("OTP accepted but verification flag update failed",
			logger.String("phone", formattedPhone),
			logger.Err(err))
		return fmt.Errorf("failed to update verification status: %w", err)
	}

	logger.Info("Phone number verified",
		logger.String("phone", formattedPhone))

	return nil
}
