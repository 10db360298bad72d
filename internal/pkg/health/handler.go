package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse represents the readiness probe response
type ReadinessResponse struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// Service runs health checks against registered dependencies
type Service struct {
	checkers map[string]HealthChecker
}

// NewService creates a new health service
func NewService() *Service {
	return &Service{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a health checker for a dependency
func (s *Service) AddChecker(name string, checker HealthChecker) {
	s.checkers[name] = checker
}

// CheckAll performs health checks on all registered dependencies
func (s *Service) CheckAll(ctx context.Context) ReadinessResponse {
	response := ReadinessResponse{
		Status:       "ready",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			response.Status = "unhealthy"
		} else {
			response.Dependencies[name] = DependencyInfo{
				Status: "healthy",
			}
		}
	}

	return response
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	// Try to get hostname for the response
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName

	// Use environment variables if available
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		// Update dynamic information
		buildInfo.Hostname = hostname
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, service *Service) {
	// Basic ping endpoint
	e.GET("/ping", NewPingHandler(serviceName))

	// Kubernetes standard liveness endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Readiness probe checks registered dependencies
	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := service.CheckAll(ctx)
		response.Service = serviceName

		if response.Status == "unhealthy" {
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		return c.JSON(http.StatusOK, response)
	})
}
