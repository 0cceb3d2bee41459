package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true for empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "$" || cfg.General.InitialRows != 1 {
		t.Fatalf("defaults = %+v", cfg.General)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.Budget.DefaultIncome = "4200"
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "€" || got.Budget.DefaultIncome != "4200" || got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	raw := "[general]\ninitial_rows = 0\n[appearance]\nchart_height = 2\n"
	if err := os.MkdirAll(filepath.Join(dir, "cbudget"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.InitialRows != 1 {
		t.Fatalf("initial rows = %d, want 1", cfg.General.InitialRows)
	}
	if cfg.Appearance.ChartHeight != 11 {
		t.Fatalf("chart height = %d, want 11", cfg.Appearance.ChartHeight)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "cbudget"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLogLevelEnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("CBUDGET_LOG_LEVEL", "DEBUG")
	if got := LogLevel(cfg); got != "debug" {
		t.Fatalf("LogLevel = %q, want debug", got)
	}
}

func TestLogFileDefaultsUnderStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	want := filepath.Join(dir, "cbudget", "cbudget.log")
	if got := LogFile(DefaultConfig()); got != want {
		t.Fatalf("LogFile = %q, want %q", got, want)
	}
}
