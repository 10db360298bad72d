package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start starts the server with graceful shutdown handling
func (s *GracefulServer) Start() error {
	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// Kill signal sent from terminal (Ctrl+C)
	// SIGTERM signal sent from Kubernetes or Docker
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Block until signal is received
	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	// Graceful shutdown with timeout
	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
