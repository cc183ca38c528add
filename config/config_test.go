package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if !cfg.Audio.Enabled {
		t.Errorf("default audio disabled")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("default logging = %+v", cfg.Logging)
	}
	if cfg.Session.DataDir != "data" {
		t.Errorf("default data dir = %q", cfg.Session.DataDir)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "serpent.toml")
	body := `
[audio]
enabled = false

[logging]
enabled = true
level = "debug"
format = "console"
file = "/tmp/serpent-test.log"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Audio.Enabled {
		t.Errorf("audio override not applied")
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging override not applied: %+v", cfg.Logging)
	}
	// Untouched sections keep their defaults
	if cfg.Session.DataDir != "data" {
		t.Errorf("unset section lost its default: %q", cfg.Session.DataDir)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Errorf("missing file did not error")
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[audio\nenabled ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("malformed file did not error")
	}
}
