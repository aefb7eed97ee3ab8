package database

import (
	"strings"
	"testing"

	"pocketledger/internal/config"
)

func TestNewConfig(t *testing.T) {
	t.Run("sqlite requires a path", func(t *testing.T) {
		_, err := NewConfig(&config.Config{DBDriver: config.DriverSQLite})
		if err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("postgres requires host and name", func(t *testing.T) {
		_, err := NewConfig(&config.Config{DBDriver: config.DriverPostgres, DBHost: "db"})
		if err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		_, err := NewConfig(&config.Config{DBDriver: "mysql", DBPath: "x"})
		if err == nil {
			t.Error("expected an error")
		}
	})
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			"plain path",
			Config{Driver: config.DriverSQLite, Path: "data/ledger.db"},
			"file:data/ledger.db?_foreign_keys=1&_busy_timeout=5000",
		},
		{
			"uri with query",
			Config{Driver: config.DriverSQLite, Path: "file:db1?mode=memory&cache=shared"},
			"file:db1?mode=memory&cache=shared&_foreign_keys=1&_busy_timeout=5000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	pg := Config{Driver: config.DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", DBName: "ledger", SSLMode: "disable"}
	if dsn := pg.DSN(); !strings.Contains(dsn, "dbname=ledger") || !strings.Contains(dsn, "host=db") {
		t.Errorf("unexpected postgres dsn %q", dsn)
	}
}

func TestConfig_IsInMemory(t *testing.T) {
	if !(&Config{Driver: config.DriverSQLite, Path: ":memory:"}).IsInMemory() {
		t.Error("expected :memory: to be in-memory")
	}
	if (&Config{Driver: config.DriverSQLite, Path: "data/ledger.db"}).IsInMemory() {
		t.Error("expected a file path not to be in-memory")
	}
}

func TestManager_MigrateAndDownUp(t *testing.T) {
	m, err := NewManager(&Config{Driver: config.DriverSQLite, Path: "file:migratetest?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !m.DB().Migrator().HasTable("transactions") {
		t.Fatal("expected transactions table")
	}

	migrator, release, err := NewMigrator(m.DB(), m.Driver())
	if err != nil {
		t.Fatalf("failed to build migrator: %v", err)
	}
	defer release()

	if err := migrator.Steps(-1); err != nil {
		t.Fatalf("down failed: %v", err)
	}
	if m.DB().Migrator().HasTable("transactions") {
		t.Error("expected transactions table to be dropped")
	}
	if err := migrator.Up(); err != nil {
		t.Fatalf("up failed: %v", err)
	}
	version, dirty, err := migrator.Version()
	if err != nil || dirty || version != 1 {
		t.Errorf("unexpected version %d dirty=%v err=%v", version, dirty, err)
	}
}
