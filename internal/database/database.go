package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pocketledger/internal/config"
	"pocketledger/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager owns the storage handle. Services receive the *gorm.DB from
// Manager.DB rather than reaching for a package-level connection.
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database described by cfg.
func NewManager(cfg *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true,
		})
	default:
		if !cfg.IsInMemory() {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Surface constraint failures as gorm.ErrDuplicatedKey and
		// gorm.ErrForeignKeyViolated regardless of driver.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.Driver == config.DriverPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// Single writer: one connection serializes every statement and keeps
		// in-memory databases alive for the lifetime of the handle.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	return &Manager{db: db, config: cfg}, nil
}

// Migrate applies all pending schema migrations for the configured driver.
func (m *Manager) Migrate() error {
	logger.Get().Infow("Running database migrations", "driver", m.config.Driver)
	if err := RunMigrations(m.db, m.config.Driver); err != nil {
		return err
	}
	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Driver returns the configured storage driver name.
func (m *Manager) Driver() string {
	return m.config.Driver
}

// Close releases the underlying connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
