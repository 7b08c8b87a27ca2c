package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DB_DRIVER", "")
		t.Setenv("SESSION_TTL", "")
		t.Setenv("HUSBAND_NAME", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.DBDriver != "postgres" {
			t.Errorf("expected postgres driver, got %s", cfg.DBDriver)
		}
		if cfg.SessionTTL != 720*time.Hour {
			t.Errorf("expected 720h session ttl, got %s", cfg.SessionTTL)
		}
		if cfg.HusbandName != "Moon" {
			t.Errorf("expected default husband name Moon, got %s", cfg.HusbandName)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("HUSBAND_PASSWORD", "moon-secret")
		t.Setenv("COOKIE_SECURE", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9000" {
			t.Errorf("expected port 9000, got %s", cfg.Port)
		}
		if cfg.DBDriver != "sqlite" {
			t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
		}
		if cfg.SessionTTL != 2*time.Hour {
			t.Errorf("expected 2h session ttl, got %s", cfg.SessionTTL)
		}
		if cfg.HusbandPassword != "moon-secret" {
			t.Errorf("expected husband password from env, got %q", cfg.HusbandPassword)
		}
		if !cfg.CookieSecure {
			t.Error("expected secure cookies")
		}
	})

	t.Run("invalid_ttl_falls_back", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "forever")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SessionTTL != 720*time.Hour {
			t.Errorf("expected fallback ttl 720h, got %s", cfg.SessionTTL)
		}
	})
}
