package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Cache   CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// BackendConfig holds the analysis backend connection settings
type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	PollMaxWait    time.Duration
}

// RedisConfig holds Redis configuration. Redis is optional: when disabled
// the service falls back to an in-process TTL store.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// CacheConfig holds cache expiration settings
type CacheConfig struct {
	MeetingsTTL time.Duration
	ReportTTL   time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("ANALYSIS_API_URL", "http://localhost:8000"),
			RequestTimeout: getEnvAsDuration("ANALYSIS_API_TIMEOUT", "30s"),
			PollInterval:   getEnvAsDuration("ANALYSIS_POLL_INTERVAL", "5s"),
			PollMaxWait:    getEnvAsDuration("ANALYSIS_POLL_MAX_WAIT", "10m"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			MeetingsTTL: getEnvAsDuration("CACHE_MEETINGS_TTL", "5m"),
			ReportTTL:   getEnvAsDuration("CACHE_REPORT_TTL", "1h"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("ANALYSIS_API_URL is required")
	}
	if _, err := url.Parse(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("ANALYSIS_API_URL is not a valid URL: %w", err)
	}
	if c.Backend.PollInterval <= 0 {
		return fmt.Errorf("ANALYSIS_POLL_INTERVAL must be positive")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
