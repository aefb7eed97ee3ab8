package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Runtime
	Env  string
	Port string

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		DBPath:     getEnv("DB_PATH", "data/pocketledger.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "pocketledger"),
		DBPassword: getEnv("DB_PASSWORD", "pocketledger"),
		DBName:     getEnv("DB_NAME", "pocketledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
