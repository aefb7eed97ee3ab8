package database

import (
	"fmt"
	"strings"

	"pocketledger/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite: a filesystem path or a "file:" URI.
	Path string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(cfg *config.Config) (*Config, error) {
	dbConfig := &Config{
		Driver:   cfg.DBDriver,
		Path:     cfg.DBPath,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}

	switch dbConfig.Driver {
	case config.DriverSQLite:
		if dbConfig.Path == "" {
			return nil, fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case config.DriverPostgres:
		if dbConfig.Host == "" || dbConfig.DBName == "" {
			return nil, fmt.Errorf("DB_HOST and DB_NAME are required for the postgres driver")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", dbConfig.Driver, config.DriverSQLite, config.DriverPostgres)
	}

	return dbConfig, nil
}

// DSN returns the driver-specific connection string. SQLite connections
// always enable foreign key enforcement, which the ledger relies on to
// protect referenced wallets, categories and savings buckets.
func (c *Config) DSN() string {
	if c.Driver == config.DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}

	dsn := c.Path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=1&_busy_timeout=5000"
}

// IsInMemory reports whether the SQLite database lives only in memory.
func (c *Config) IsInMemory() bool {
	return c.Driver == config.DriverSQLite &&
		(c.Path == ":memory:" || strings.Contains(c.Path, "mode=memory"))
}
