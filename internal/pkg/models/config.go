package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	OTP     OTPConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// BackendConfig contains connection settings for the hosted data/auth platform
type BackendConfig struct {
	BaseURL    string
	ServiceKey string
	Timeout    int // in seconds
}

// RedisConfig contains Redis connection configuration.
// Redis is optional; it only backs the OTP rate limiter.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// OTPConfig contains OTP dispatch protection settings
type OTPConfig struct {
	RateLimit  int // max send requests per phone/IP within RatePeriod
	RatePeriod int // in seconds
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
