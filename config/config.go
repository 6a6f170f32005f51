// ABOUTME: This file handles configuration management for the Biotrackr services
// ABOUTME: Loads environment variables with optional YAML overlay and validates them

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Secret store backends.
const (
	SecretBackendKubernetes = "kubernetes"
	SecretBackendEnv        = "env"
)

// Config holds all configuration for the Biotrackr services. Each binary
// reads the sections it needs.
type Config struct {
	ServiceName string `yaml:"serviceName"`
	LogLevel    string `yaml:"logLevel"`

	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Fitbit    FitbitConfig    `yaml:"fitbit"`
	Secrets   SecretsConfig   `yaml:"secrets"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Ingestion IngestionConfig `yaml:"ingestion"`
}

// HTTPConfig holds the listen settings for the query APIs
type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// DatabaseConfig holds PostgreSQL connection settings for the document store
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslMode"`
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// FitbitConfig holds Fitbit API settings
type FitbitConfig struct {
	BaseURL        string        `yaml:"baseURL"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
	RateLimitRPS   float64       `yaml:"rateLimitRPS"`
	RateLimitBurst int           `yaml:"rateLimitBurst"`
}

// SecretsConfig selects and configures the secret store backend
type SecretsConfig struct {
	Backend    string `yaml:"backend"`
	Namespace  string `yaml:"namespace"`
	SecretName string `yaml:"secretName"`
}

// RefreshConfig holds the token refresh schedule for the auth worker
type RefreshConfig struct {
	Interval   time.Duration `yaml:"interval"`
	RunOnStart bool          `yaml:"runOnStart"`
}

// IngestionConfig holds the ingestion schedule for the data workers
type IngestionConfig struct {
	Interval   time.Duration `yaml:"interval"`
	RunOnStart bool          `yaml:"runOnStart"`
}

// Load reads configuration from environment variables, applies the optional
// YAML overlay named by BIOTRACKR_CONFIG_FILE, and validates the result.
func Load(serviceName string) (*Config, error) {
	cfg := &Config{
		ServiceName: getEnvOrDefault("SERVICE_NAME", serviceName),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),

		HTTP: HTTPConfig{
			Host: getEnvOrDefault("HTTP_HOST", "0.0.0.0"),
			Port: getEnvOrDefault("HTTP_PORT", "8080"),
		},

		Database: DatabaseConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvOrDefault("DB_NAME", "biotrackr"),
			User:     getEnvOrDefault("DB_USER", "biotrackr"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
		},

		Fitbit: FitbitConfig{
			BaseURL:        getEnvOrDefault("FITBIT_BASE_URL", "https://api.fitbit.com"),
			RequestTimeout: getDurationEnv("FITBIT_REQUEST_TIMEOUT", 30*time.Second),
			RateLimitRPS:   getFloatEnv("FITBIT_RATE_LIMIT_RPS", 2),
			RateLimitBurst: getIntEnv("FITBIT_RATE_LIMIT_BURST", 5),
		},

		Secrets: SecretsConfig{
			Backend:    getEnvOrDefault("SECRET_BACKEND", SecretBackendKubernetes),
			Namespace:  getEnvOrDefault("SECRET_NAMESPACE", "biotrackr"),
			SecretName: getEnvOrDefault("SECRET_NAME", "biotrackr-fitbit-secrets"),
		},

		Refresh: RefreshConfig{
			Interval:   getDurationEnv("REFRESH_INTERVAL", 6*time.Hour),
			RunOnStart: getBoolEnv("REFRESH_RUN_ON_START", true),
		},

		Ingestion: IngestionConfig{
			Interval:   getDurationEnv("INGESTION_INTERVAL", 24*time.Hour),
			RunOnStart: getBoolEnv("INGESTION_RUN_ON_START", true),
		},
	}

	if path := os.Getenv("BIOTRACKR_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyFile overlays values from a YAML file on top of the environment.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.HTTP.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid HTTP port: %s", c.HTTP.Port)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch c.Secrets.Backend {
	case SecretBackendKubernetes, SecretBackendEnv:
	default:
		return fmt.Errorf("invalid secret backend: %s", c.Secrets.Backend)
	}

	if c.Refresh.Interval < time.Minute {
		return fmt.Errorf("refresh interval must be at least 1 minute, got %v", c.Refresh.Interval)
	}
	if c.Ingestion.Interval < time.Minute {
		return fmt.Errorf("ingestion interval must be at least 1 minute, got %v", c.Ingestion.Interval)
	}

	if c.Fitbit.RateLimitRPS <= 0 {
		return fmt.Errorf("fitbit rate limit must be positive, got %v", c.Fitbit.RateLimitRPS)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
