package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Client   ClientConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	StaticDir       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds embedded database settings
type DatabaseConfig struct {
	Path      string
	BackupDir string
}

// ClientConfig holds comment client settings
type ClientConfig struct {
	BaseURL      string
	FallbackPath string
	Timeout      time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			StaticDir:       getEnv("STATIC_DIR", "static"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Path:      getEnv("DB_PATH", "data/badger"),
			BackupDir: getEnv("DB_BACKUP_DIR", "data/backups"),
		},
		Client: ClientConfig{
			BaseURL:      getEnv("API_BASE_URL", "http://localhost:8080"),
			FallbackPath: getEnv("FALLBACK_PATH", "data/fallback"),
			Timeout:      getDurationEnv("CLIENT_TIMEOUT", 15*time.Second),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
