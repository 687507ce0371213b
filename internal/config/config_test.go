package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("expected default data dir, got %q", cfg.Data.Dir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Enrich.Model != "phi4-mini" {
		t.Errorf("expected default model, got %q", cfg.Enrich.Model)
	}
	if cfg.Enrich.BatchSize != 50 {
		t.Errorf("expected default batch size 50, got %d", cfg.Enrich.BatchSize)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9090

[enrich]
model = "llama3"
rate_limit = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected overridden port, got %d", cfg.Server.Port)
	}
	if cfg.Enrich.Model != "llama3" {
		t.Errorf("expected overridden model, got %q", cfg.Enrich.Model)
	}
	if cfg.Enrich.RateLimit != 0.5 {
		t.Errorf("expected overridden rate limit, got %v", cfg.Enrich.RateLimit)
	}
	// Unset keys keep their defaults
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host preserved, got %q", cfg.Server.Host)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("expected default data dir preserved, got %q", cfg.Data.Dir)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}
