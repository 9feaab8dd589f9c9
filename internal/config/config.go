package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported values for DB_DRIVER
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Supported values for DB_ON_DELETE
const (
	OnDeleteNullify = "nullify"
	OnDeleteReject  = "reject"
)

// Config holds all application configuration
type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// DBConfig holds database configuration
type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"mysql"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"3306"`
	User     string `envconfig:"DB_USER" default:"root"`
	Password string `envconfig:"DB_PASSWORD"`
	Database string `envconfig:"DB_NAME" default:"movies"`
	MaxConns int    `envconfig:"DB_MAX_CONNS" default:"10"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	// OnDelete decides what happens to movies when their director or genre is deleted
	OnDelete string `envconfig:"DB_ON_DELETE" default:"nullify"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int           `envconfig:"SERVER_PORT" default:"8080"`
	RateLimit      float64       `envconfig:"SERVER_RATE_LIMIT" default:"50"`
	RateBurst      int           `envconfig:"SERVER_RATE_BURST" default:"100"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"10s"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// TelemetryConfig holds OpenTelemetry tracing configuration
type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"movies-api"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
}

// DSN returns the data source name for the configured driver
func (c *DBConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to load db config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Telemetry); err != nil {
		return nil, fmt.Errorf("failed to load telemetry config: %w", err)
	}

	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	cfg.DB.OnDelete = strings.ToLower(strings.TrimSpace(cfg.DB.OnDelete))

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMySQL, DriverPostgres:
		if c.DB.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
		if c.DB.MaxConns <= 0 {
			return fmt.Errorf("DB_MAX_CONNS must be positive")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER must be one of mysql, postgres, memory")
	}
	if c.DB.OnDelete != OnDeleteNullify && c.DB.OnDelete != OnDeleteReject {
		return fmt.Errorf("DB_ON_DELETE must be nullify or reject")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("SERVER_RATE_LIMIT must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("SERVER_RATE_BURST must be positive when rate limiting is enabled")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT must be positive")
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when tracing is enabled")
	}
	return nil
}
