package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyClient_SetsAuthHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAPIKey = r.Header.Get(APIKeyHeader)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "service-key")
	err := client.GetJSON(context.Background(), "/rest/v1/accounts", nil)

	assert.NoError(t, err)
	assert.Equal(t, "service-key", gotAPIKey)
	assert.Equal(t, "Bearer service-key", gotAuth)
}

func TestAPIKeyClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+6281234567890", body["phone"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"sent"}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "service-key")

	var result map[string]string
	err := client.PostJSON(context.Background(), "/auth/v1/otp", map[string]string{"phone": "+6281234567890"}, &result)

	assert.NoError(t, err)
	assert.Equal(t, "sent", result["status"])
}

func TestAPIKeyClient_PatchJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPatch, r.Method)
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "service-key")
	err := client.PatchJSON(context.Background(), "/rest/v1/accounts?phone=eq.123", map[string]bool{"verification_status": true}, nil)

	assert.NoError(t, err)
}

func TestAPIKeyClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusForbidden)
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "bad-key")
	err := client.GetJSON(context.Background(), "/rest/v1/accounts", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestAPIKeyClient_Timeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	client := NewAPIKeyClient(server.URL, "service-key")
	client.SetTimeout(10 * time.Millisecond)

	err := client.GetJSON(context.Background(), "/rest/v1/accounts", nil)
	assert.Error(t, err)
}
