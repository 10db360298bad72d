package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"github.com/sigap-app/sigap-backend/services/account"
	"github.com/stretchr/testify/assert"
)

func newGateway(serverURL string) *PlatformGW {
	return NewPlatformGW(models.BackendConfig{
		BaseURL:    serverURL,
		ServiceKey: "service-key",
		Timeout:    5,
	})
}

func TestFindAccountByEmail_Found(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/accounts", r.URL.Path)
		assert.Equal(t, "eq.budi@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Account{{
			ID:    "acc-1",
			Email: "budi@example.com",
		}})
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	acct, err := gw.FindAccountByEmail(context.Background(), "budi@example.com")

	assert.NoError(t, err)
	if assert.NotNil(t, acct) {
		assert.Equal(t, "acc-1", acct.ID)
	}
}

func TestFindAccountByEmail_NotFound(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	acct, err := gw.FindAccountByEmail(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Nil(t, acct)
}

func TestFindAccountByEmail_PlatformError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	acct, err := gw.FindAccountByEmail(context.Background(), "budi@example.com")

	assert.Error(t, err)
	assert.Nil(t, acct)
}

func TestCreateAccount(t *testing.T) {
	var received models.Account
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/accounts", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(nethttp.StatusCreated)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	verified := false
	err := gw.CreateAccount(context.Background(), &models.Account{
		FullName:            "Budi Santoso",
		Email:               "budi@example.com",
		Phone:               "+6281234567890",
		PasswordHash:        "$2a$10$abcdefg",
		Role:                models.RoleOfficer,
		OfficerVerification: &verified,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RoleOfficer, received.Role)
	if assert.NotNil(t, received.OfficerVerification) {
		assert.False(t, *received.OfficerVerification)
	}
	assert.False(t, received.Verified)
}

func TestCreateAccount_OmitsOfficerVerificationForCitizens(t *testing.T) {
	var raw map[string]json.RawMessage
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(nethttp.StatusCreated)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.CreateAccount(context.Background(), &models.Account{
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Role:     models.RoleCitizen,
	})

	assert.NoError(t, err)
	_, present := raw["officer_verification"]
	assert.False(t, present)
}

func TestMarkPhoneVerified_Success(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPatch, r.Method)
		assert.Equal(t, "eq.+6281234567890", r.URL.Query().Get("phone"))

		var update map[string]bool
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		assert.True(t, update["verification_status"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Account{{ID: "acc-1", Verified: true}})
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.MarkPhoneVerified(context.Background(), "+6281234567890")

	assert.NoError(t, err)
}

func TestMarkPhoneVerified_NoMatch(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.MarkPhoneVerified(context.Background(), "+6281234567890")

	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestSendOTP(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/auth/v1/otp", r.URL.Path)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+6281234567890", req["phone"])
		assert.Equal(t, "sms", req["channel"])

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.SendOTP(context.Background(), "+6281234567890")

	assert.NoError(t, err)
}

func TestVerifyOTP_Accepted(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/auth/v1/verify", r.URL.Path)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+6281234567890", req["phone"])
		assert.Equal(t, "123456", req["token"])
		assert.Equal(t, "sms", req["type"])

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.VerifyOTP(context.Background(), "+6281234567890", "123456")

	assert.NoError(t, err)
}

func TestVerifyOTP_Rejected(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusForbidden)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.VerifyOTP(context.Background(), "+6281234567890", "000000")

	assert.Error(t, err)
}

func TestCheckHealth(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/health", r.URL.Path)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	gw := newGateway(server.URL)
	err := gw.CheckHealth(context.Background())

	assert.NoError(t, err)
}

func TestCheckHealth_PlatformDown(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusServiceUnavailable)
	}))
	server.Close() // refuse connections

	gw := newGateway(server.URL)
	err := gw.CheckHealth(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "platform unreachable")
}
