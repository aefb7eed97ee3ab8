package database

import (
	"embed"
	"errors"
	"fmt"

	"pocketledger/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// NewMigrator builds a migrate instance over the embedded migrations for
// driver, reusing db's connection pool. Callers must not call Close on the
// returned instance: that would close the shared pool. Release the source
// with the returned function instead.
func NewMigrator(db *gorm.DB, driver string) (*migrate.Migrate, func(), error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case config.DriverPostgres:
		target, err = migratepg.WithInstance(sqlDB, &migratepg.Config{})
	case config.DriverSQLite:
		target, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	default:
		return nil, nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s migration driver: %w", driver, err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	release := func() { _ = src.Close() }
	return m, release, nil
}

// RunMigrations applies every pending up migration.
func RunMigrations(db *gorm.DB, driver string) error {
	m, release, err := NewMigrator(db, driver)
	if err != nil {
		return err
	}
	defer release()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
