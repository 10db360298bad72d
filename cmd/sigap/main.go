package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sigap-app/sigap-backend/internal/pkg/config"
	"github.com/sigap-app/sigap-backend/internal/pkg/database"
	"github.com/sigap-app/sigap-backend/internal/pkg/health"
	"github.com/sigap-app/sigap-backend/internal/pkg/logger"
	"github.com/sigap-app/sigap-backend/internal/pkg/middleware"
	"github.com/sigap-app/sigap-backend/internal/pkg/server"
	gatewayHTTP "github.com/sigap-app/sigap-backend/services/account/gateway/http"
	"github.com/sigap-app/sigap-backend/services/account/handler"
	httpHandler "github.com/sigap-app/sigap-backend/services/account/handler/http"
	"github.com/sigap-app/sigap-backend/services/account/usecase"
)

func main() {
	appName := "sigap-backend"
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Log startup with Zap
	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.Backend.BaseURL == "" {
		zapLogger.Fatal("BACKEND_BASE_URL is required")
	}

	// Initialize platform gateway
	accountGW := gatewayHTTP.NewPlatformGW(configs.Backend)

	// Initialize UseCase
	accountUC := usecase.NewAccountUC(accountGW, configs)

	// Handlers for HTTP
	accountHandler := httpHandler.NewAccountHandler(accountUC)
	otpHandler := httpHandler.NewOTPHandler(accountUC)

	// Initialize handlers
	h := handler.NewHandler(accountHandler, otpHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	// Cross-origin requests are allowed from any origin.
	// TODO: narrow AllowOrigins to the deployed frontend hosts.
	e.Use(echomw.CORS())

	// Readiness reports the state of every dependency the service talks to
	healthService := health.NewService()
	healthService.AddChecker("platform", accountGW)

	// Optional Redis-backed rate limiter guarding OTP dispatch
	var otpRateLimiter echo.MiddlewareFunc
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()

		healthService.AddChecker("redis", redisClient)

		otpRateLimiter = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient,
			Key:         "otp",
			Limit:       configs.OTP.RateLimit,
			Period:      time.Duration(configs.OTP.RatePeriod) * time.Second,
		})
	}

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, healthService)

	// Register service routes
	h.RegisterRoutes(e, otpRateLimiter)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
