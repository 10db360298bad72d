package usecase

import (
	"context"
	"fmt"

	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/internal/utils"
	"github.com/sigap-app/sigap-backend/services/account"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account for the given pre-validated request.
// The duplicate-email check and the insert are two separate platform calls;
// true uniqueness has to be enforced by a constraint on the platform side.
func (u *AccountUC) Register(ctx context.Context, req *models.RegisterRequest) error {
	valid, phone := utils.ValidatePhone(req.Phone)
	if !valid {
		return account.ErrInvalidPhone
	}

	// Reject duplicate emails before inserting
	existing, err := u.accountGW.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to look up account by email: %w", err)
	}
	if existing != nil {
		return account.ErrEmailRegistered
	}

	// Derive a salted one-way hash of the password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleCitizen
	var officerVerification *bool
	if req.IsOfficer != nil && *req.IsOfficer {
		role = models.RoleOfficer
		// Officers start unverified; the flag is absent for citizens
		verified := false
		officerVerification = &verified
	}

	anonymous := false
	if req.Anonymous != nil {
		anonymous = *req.Anonymous
	}

	acct := &models.Account{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               phone,
		PasswordHash:        string(hash),
		Role:                role,
		Anonymous:           anonymous,
		OfficerVerification: officerVerification,
		Verified:            false,
	}

	if err := u.accountGW.CreateAccount(ctx, acct); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account registered",
		logger.String("email", req.Email),
		logger.String("role", role))

	return nil
}
