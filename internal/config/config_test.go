package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Language != LanguageJapanese {
		t.Errorf("Language = %q, want ja", cfg.Language)
	}
	if cfg.KeyBindings.OpenSettings != "Home" {
		t.Errorf("OpenSettings = %q, want Home", cfg.KeyBindings.OpenSettings)
	}
	if cfg.Input.HoldThresholdMS != 300 || cfg.Input.TickIntervalMS != 50 {
		t.Errorf("Input = %+v, want 300/50", cfg.Input)
	}
	if cfg.Game.ProcessName != "Endfield.exe" {
		t.Errorf("ProcessName = %q", cfg.Game.ProcessName)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "General.toml")

	cfg := Default()
	cfg.Language = LanguageEnglish
	cfg.KeyBindings.ToggleOverlay = "F2"
	cfg.Overlay.Opacity = 0.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Language != LanguageEnglish {
		t.Errorf("Language = %q, want en", loaded.Language)
	}
	if loaded.KeyBindings.ToggleOverlay != "F2" {
		t.Errorf("ToggleOverlay = %q, want F2", loaded.KeyBindings.ToggleOverlay)
	}
	if loaded.Overlay.Opacity != 0.5 {
		t.Errorf("Opacity = %f, want 0.5", loaded.Overlay.Opacity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of missing file should error")
	}
}

func TestLoadOrDefaultWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "General.toml")

	cfg := LoadOrDefault(path)
	if cfg.KeyBindings.ChainAttack != "E" {
		t.Errorf("ChainAttack = %q, want E", cfg.KeyBindings.ChainAttack)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not persisted: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvGameProcess, "Other.exe")
	t.Setenv(EnvHoldThresholdMS, "450")

	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "General.toml"))
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Game.ProcessName != "Other.exe" {
		t.Errorf("ProcessName = %q, want Other.exe", cfg.Game.ProcessName)
	}
	if cfg.Input.HoldThresholdMS != 450 {
		t.Errorf("HoldThresholdMS = %d, want 450", cfg.Input.HoldThresholdMS)
	}
}

func TestEnvOverrideIgnoresInvalidThreshold(t *testing.T) {
	t.Setenv(EnvHoldThresholdMS, "not-a-number")

	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "General.toml"))
	if cfg.Input.HoldThresholdMS != 300 {
		t.Errorf("HoldThresholdMS = %d, want default 300", cfg.Input.HoldThresholdMS)
	}
}

func TestConfigPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	if got := ConfigPath(); got != "/tmp/custom.toml" {
		t.Errorf("ConfigPath() = %q", got)
	}
}
