package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	StorageType     string
	DataDir         string
	DatabasePath    string
	DatabaseURL     string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		StorageType:     getEnv("STORAGE_TYPE", "file"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DatabasePath:    getEnv("DB_PATH", "./littlewords.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		ShutdownTimeout: 10 * time.Second,
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
