package http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/sigap-app/sigap-backend/internal/pkg/http"
	"github.com/sigap-app/sigap-backend/internal/pkg/models"
)

const (
	accountsEndpoint  = "/rest/v1/accounts"
	otpSendEndpoint   = "/auth/v1/otp"
	otpVerifyEndpoint = "/auth/v1/verify"
	healthEndpoint    = "/auth/v1/health"
)

// PlatformGW talks to the hosted data/auth platform over its REST API.
// It implements account.AccountGW.
type PlatformGW struct {
	client *httpclient.APIKeyClient
}

// NewPlatformGW creates a new platform gateway from backend configuration
func NewPlatformGW(cfg models.BackendConfig) *PlatformGW {
	client := httpclient.NewAPIKeyClient(cfg.BaseURL, cfg.ServiceKey)
	if cfg.Timeout > 0 {
		client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}
	return &PlatformGW{client: client}
}

// CheckHealth probes the platform's health endpoint. It is used by the
// readiness endpoint to report platform reachability.
func (g *PlatformGW) CheckHealth(ctx context.Context) error {
	if err := g.client.GetJSON(ctx, healthEndpoint, nil); err != nil {
		return fmt.Errorf("platform unreachable: %w", err)
	}
	return nil
}
