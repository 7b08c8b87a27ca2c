package database

import (
	"path/filepath"
	"strings"
	"testing"

	"twofold/internal/config"
)

func TestNewConfig(t *testing.T) {
	t.Run("rejects_unknown_driver", func(t *testing.T) {
		_, err := NewConfig(&config.Config{DBDriver: "mysql"})
		if err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})

	t.Run("builds_postgres_urls", func(t *testing.T) {
		cfg, err := NewConfig(&config.Config{
			DBDriver:   DriverPostgres,
			DBHost:     "db",
			DBPort:     "5432",
			DBUser:     "twofold",
			DBPassword: "p@ss word",
			DBName:     "savings",
			DBSSLMode:  "disable",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(cfg.DSN(), "host=db") || !strings.Contains(cfg.DSN(), "dbname=savings") {
			t.Errorf("unexpected DSN: %s", cfg.DSN())
		}
		want := "postgres://twofold:p%40ss%20word@db:5432/savings?sslmode=disable"
		if got := cfg.MigrationURL(); got != want {
			t.Errorf("MigrationURL() = %s, want %s", got, want)
		}
	})
}

func TestSQLiteManager(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "twofold.db")}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer m.Close()

	if err := m.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	for _, table := range []string{"users", "investments", "monthly_savings", "quote_message", "audit_logs"} {
		if !m.DB().Migrator().HasTable(table) {
			t.Errorf("table %q should exist after migration", table)
		}
	}
}
