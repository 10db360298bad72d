package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestRegisterHealthEndpoints_Liveness(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "sigap-backend", NewService())

	for _, path := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}

func TestReadyEndpoint_AllDependenciesHealthy(t *testing.T) {
	service := NewService()
	service.AddChecker("platform", &stubChecker{})
	service.AddChecker("redis", &stubChecker{})

	e := echo.New()
	RegisterHealthEndpoints(e, "sigap-backend", service)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "sigap-backend", resp.Service)
	assert.Equal(t, "healthy", resp.Dependencies["platform"].Status)
	assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
}

func TestReadyEndpoint_DependencyDown(t *testing.T) {
	service := NewService()
	service.AddChecker("platform", &stubChecker{})
	service.AddChecker("redis", &stubChecker{err: errors.New("connection refused")})

	e := echo.New()
	RegisterHealthEndpoints(e, "sigap-backend", service)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["platform"].Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
}

func TestReadyEndpoint_NoCheckersConfigured(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "sigap-backend", NewService())

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPingHandler(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "sigap-backend", NewService())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "sigap-backend", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
}
