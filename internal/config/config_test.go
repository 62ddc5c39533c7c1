package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "slate" {
		t.Errorf("default theme = %q, want slate", cfg.Appearance.Theme)
	}
	if cfg.Appearance.Currency != "$" {
		t.Errorf("default currency = %q, want $", cfg.Appearance.Currency)
	}
	if Exists() {
		t.Error("Exists() = true before any save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/outlay-test"
	cfg.Appearance.Theme = "paper"
	cfg.Appearance.Currency = "EUR "

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestDataDirPrecedence(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	if got := DataDir(cfg); got != filepath.Join("/xdg/data", "outlay") {
		t.Errorf("XDG DataDir = %q", got)
	}

	cfg.General.DataDir = "/explicit"
	if got := DataDir(cfg); got != "/explicit" {
		t.Errorf("explicit DataDir = %q, want /explicit", got)
	}

	if got := DataPath(cfg); got != filepath.Join("/explicit", "outlay.db") {
		t.Errorf("DataPath = %q", got)
	}
}
