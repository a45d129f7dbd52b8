package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Delimiter != DefaultDelimiter {
		t.Errorf("Delimiter = %q, want %q", cfg.Delimiter, DefaultDelimiter)
	}
	if cfg.Profile != "" {
		t.Errorf("Profile = %q, want empty", cfg.Profile)
	}
}

func TestLoadFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "musicburst")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
output = "reports/out.csv"
delimiter = "tab"
log_level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != "reports/out.csv" {
		t.Errorf("Output = %q, want %q", cfg.Output, "reports/out.csv")
	}
	if cfg.Delimiter != "tab" {
		t.Errorf("Delimiter = %q, want %q", cfg.Delimiter, "tab")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "musicburst")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`delimiter = "tab"`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MUSICBURST_DELIMITER", "ascii")
	t.Setenv("MUSICBURST_OUTPUT", "env.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Delimiter != "ascii" {
		t.Errorf("Delimiter = %q, want %q", cfg.Delimiter, "ascii")
	}
	if cfg.Output != "env.csv" {
		t.Errorf("Output = %q, want %q", cfg.Output, "env.csv")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "musicburst")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not valid toml ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed config")
	}
}
