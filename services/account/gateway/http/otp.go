package http

import (
	"context"
	"fmt"
)

// otpSendRequest is the platform payload for dispatching a one-time code
type otpSendRequest struct {
	Phone   string `json:"phone"`
	Channel string `json:"channel"`
}

// otpVerifyRequest is the platform payload for validating a one-time code
type otpVerifyRequest struct {
	Phone string `json:"phone"`
	Token string `json:"token"`
	Type  string `json:"type"`
}

// SendOTP asks the platform to generate and deliver an SMS code
func (g *PlatformGW) SendOTP(ctx context.Context, phone string) error {
	req := otpSendRequest{Phone: phone, Channel: "sms"}
	if err := g.client.PostJSON(ctx, otpSendEndpoint, req, nil); err != nil {
		return fmt.Errorf("failed to dispatch OTP: %w", err)
	}
	return nil
}

// VerifyOTP asks the platform to validate the (phone, token) pair as an
// SMS-type one-time code. The platform rejects wrong, expired, and already
// consumed codes with the same failure.
func (g *PlatformGW) VerifyOTP(ctx context.Context, phone, token string) error {
	req := otpVerifyRequest{Phone: phone, Token: token, Type: "sms"}
	if err := g.client.PostJSON(ctx, otpVerifyEndpoint, req, nil); err != nil {
		return fmt.Errorf("OTP verification failed: %w", err)
	}
	return nil
}
