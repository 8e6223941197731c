package config

import (
	"fmt"
	"os"
	"time"

	"lastomo-app/internal/logger"

	"github.com/sirupsen/logrus"
)

// AppConfig holds all application configuration
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	// AllowedOrigin is the single origin permitted to call /api/* endpoints
	AllowedOrigin string
}

// DatabaseConfig holds database connection configuration.
// Driver selects the backend: "sqlite3" (default, file-based) or "postgres".
type DatabaseConfig struct {
	Driver string

	// sqlite3
	Path string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LLMConfig holds completion provider configuration
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads and validates application configuration from environment
func LoadConfig() (*AppConfig, error) {
	config := &AppConfig{}

	config.Server = ServerConfig{
		Port:          getEnvOrDefault("SERVER_PORT", "5001"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	config.Database = DatabaseConfig{
		Driver:   getEnvOrDefault("DB_DRIVER", "sqlite3"),
		Path:     getEnvOrDefault("DB_PATH", "lastomo.db"),
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		Name:     getEnvOrDefault("DB_NAME", "lastomo"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	// The provider key is required: a missing key should stop the process at
	// startup, not surface on the first chat request.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable must be set")
	}

	config.LLM = LLMConfig{
		APIKey:  apiKey,
		Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4"),
		BaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Timeout: getEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second),
	}

	return config, nil
}

// GetDSN returns the postgres connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid duration value, using default")
		return defaultValue
	}
	return value
}
