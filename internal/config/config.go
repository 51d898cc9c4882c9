package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Registry RegistryConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// DatabaseConfig contains database configuration
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// For SQLite
	Path string
}

// EngineConfig contains trust-scoring engine tunables. The defaults are the
// fixed design constants; they are unvalidated heuristics, not calibrated
// weights.
type EngineConfig struct {
	VerifiedThreshold float64
	BatchConcurrency  int
	LookupTimeout     time.Duration
}

// RegistryConfig points at the data files backing the simulated external
// lookups. Empty paths leave a lookup on its conservative defaults.
type RegistryConfig struct {
	ReputationPath   string
	DisasterZonePath string
	OfficialFeedPath string
}

// WorkerConfig contains the verification sweeper configuration
type WorkerConfig struct {
	Enabled   bool
	Schedule  string // cron expression
	BatchSize int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			Name:            getEnv("DB_NAME", "suraksha"),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			Path:            getEnv("DB_PATH", "./suraksha.db"),
		},
		Engine: EngineConfig{
			VerifiedThreshold: getEnvAsFloat("ENGINE_VERIFIED_THRESHOLD", 0.70),
			BatchConcurrency:  getEnvAsInt("ENGINE_BATCH_CONCURRENCY", 8),
			LookupTimeout:     getEnvAsDuration("ENGINE_LOOKUP_TIMEOUT", 2*time.Second),
		},
		Registry: RegistryConfig{
			ReputationPath:   getEnv("REGISTRY_REPUTATION_PATH", ""),
			DisasterZonePath: getEnv("REGISTRY_DISASTER_ZONE_PATH", ""),
			OfficialFeedPath: getEnv("REGISTRY_OFFICIAL_FEED_PATH", ""),
		},
		Worker: WorkerConfig{
			Enabled:   getEnvAsBool("WORKER_ENABLED", true),
			Schedule:  getEnv("WORKER_SCHEDULE", "@every 5m"),
			BatchSize: getEnvAsInt("WORKER_BATCH_SIZE", 50),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Engine.VerifiedThreshold < 0 || c.Engine.VerifiedThreshold > 1 {
		return fmt.Errorf("verified threshold must be in [0,1], got %f", c.Engine.VerifiedThreshold)
	}

	if c.Engine.BatchConcurrency < 1 {
		return fmt.Errorf("batch concurrency must be positive, got %d", c.Engine.BatchConcurrency)
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
