package app

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string        // Base URL of the order-management API
	DatabaseFile string        // Path to the SQLite credential store (default: ./orderfront.db)
	HTTPTimeout  time.Duration // Per-request HTTP timeout (default: 10s)
	Env          string        // Environment (dev, staging, prod) (default: dev)
	LogLevel     string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat    string        // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	// A .env next to the binary is convenient for local use; absence is fine.
	_ = godotenv.Load()

	return Config{
		APIBaseURL:   getEnvOrDefault("ORDERFRONT_API_URL", "http://localhost:8080"),
		DatabaseFile: getEnvOrDefault("ORDERFRONT_DATABASE_FILE", "orderfront.db"),
		HTTPTimeout:  getEnvDurationOrDefault("ORDERFRONT_HTTP_TIMEOUT", 10*time.Second),
		Env:          getEnvOrDefault("ENV", "dev"),
		// Default to warn so request logs stay out of the way of rendered
		// output unless asked for.
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
