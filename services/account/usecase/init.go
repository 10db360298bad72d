package usecase

import (
	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/services/account"
)

type AccountUC struct {
	accountGW account.AccountGW
	cfg       *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountGW account.AccountGW,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountGW: accountGW,
		cfg:       cfg,
	}
}
