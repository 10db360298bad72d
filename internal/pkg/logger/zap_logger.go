package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sigap-app/sigap-backend/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is our custom Zap logger that supports console and file outputs
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	// Parse log level
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	// Create encoder config for structured JSON logging
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// Create JSON encoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	// Prepare writers
	var cores []zapcore.Core

	// Console output (always enabled)
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))

	zapLogger := &ZapLogger{
		filePath: config.FilePath,
	}

	// File output if path is provided
	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	// Create the final logger with multiple cores
	core := zapcore.NewTee(cores...)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	zapLogger.Logger = logger
	zapLogger.sugar = logger.Sugar()

	return zapLogger, nil
}

// setupFileOutput configures file output for the logger
func (zl *ZapLogger) setupFileOutput(filePath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close closes the log file and syncs the logger
func (zl *ZapLogger) Close() error {
	// Sync the logger to flush any buffered logs
	_ = zl.Logger.Sync()
	_ = zl.sugar.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithRequestContext adds request context fields
func (zl *ZapLogger) WithRequestContext(requestID, method, path string) *zap.Logger {
	return zl.Logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)
}

// LogHTTPRequest logs an HTTP request with all relevant context
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.Logger.With(
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	// Log with appropriate level
	if statusCode >= 500 {
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		} else {
			logger.Error("Server error")
		}
	} else if statusCode >= 400 {
		logger.Warn("Client error")
	} else {
		logger.Info("Request processed")
	}
}

// Sugar returns the sugared logger for easier use
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// InitZapLoggerFromConfig initializes Zap logger directly from config models
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	zapConfig := ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	}

	zapLogger, err := NewZapLogger(zapConfig)
	if err != nil {
		return nil, err
	}

	SetGlobalLogger(zapLogger)
	return zapLogger, nil
}
