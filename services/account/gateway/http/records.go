package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/services/account"
)

// FindAccountByEmail queries the accounts collection by exact email match.
// It returns nil without an error when no record matches.
func (g *PlatformGW) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	endpoint := fmt.Sprintf("%s?select=*&email=eq.%s", accountsEndpoint, url.QueryEscape(email))

	var accounts []models.Account
	if err := g.client.GetJSON(ctx, endpoint, &accounts); err != nil {
		return nil, fmt.Errorf("failed to query accounts by email: %w", err)
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return &accounts[0], nil
}

// CreateAccount inserts a new account record
func (g *PlatformGW) CreateAccount(ctx context.Context, acct *models.Account) error {
	if err := g.client.PostJSON(ctx, accountsEndpoint, acct, nil); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// MarkPhoneVerified flips verification_status on the account matching the
// phone. The platform echoes the updated records; an empty result means no
// account matched.
func (g *PlatformGW) MarkPhoneVerified(ctx context.Context, phone string) error {
	endpoint := fmt.Sprintf("%s?phone=eq.%s", accountsEndpoint, url.QueryEscape(phone))
	update := map[string]bool{"verification_status": true}

	var updated []models.Account
	if err := g.client.PatchJSON(ctx, endpoint, update, &updated); err != nil {
		return fmt.Errorf("failed to update verification status: %w", err)
	}

	if len(updated) == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}
