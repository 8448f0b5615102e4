package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5175" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.TokenTTL != 720*time.Hour || cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected durations ttl=%v timeout=%v", cfg.TokenTTL, cfg.RequestTimeout)
	}
	if cfg.Production() {
		t.Fatal("default env should not be production")
	}
	if cfg.FinishedTTL != time.Hour || cfg.IdleTTL != 24*time.Hour || cfg.SweepInterval != 5*time.Minute {
		t.Fatalf("unexpected session ttls %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("WORDS_SOLUTIONS_FILE", "/tmp/solutions.txt")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || !cfg.Production() || cfg.SolutionsFile != "/tmp/solutions.txt" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("timeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set; register cleanup
	// for the one it will set.
	t.Setenv("CLIENT_ORIGIN", "")
	os.Unsetenv("CLIENT_ORIGIN")

	p := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(p, []byte("CLIENT_ORIGIN=https://play.example\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ClientOrigin != "https://play.example" {
		t.Fatalf("ClientOrigin = %q", cfg.ClientOrigin)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("PLAYER_TOKEN_TTL", "forever")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
