// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"pocketledger/internal/config"
	"pocketledger/internal/database"

	"gorm.io/gorm"
)

// dbCounter gives every test its own named in-memory database so tests
// sharing a process never see each other's rows.
var dbCounter atomic.Int64

// SetupTestDB creates an isolated in-memory SQLite database with the
// embedded migrations applied.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	manager, err := database.NewManager(&database.Config{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1)),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.RunMigrations(manager.DB(), config.DriverSQLite); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return manager.DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
