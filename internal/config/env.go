package config

import (
	"os"
	"strconv"
)

// Environment variables recognized as overrides. They take precedence
// over file values so a launcher can tweak behavior without editing the
// settings file.
const (
	// EnvConfigPath overrides the settings file location.
	EnvConfigPath = "COMBONAVI_CONFIG"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "COMBONAVI_LOG_LEVEL"

	// EnvGameProcess overrides the watched process name.
	EnvGameProcess = "COMBONAVI_GAME_PROCESS"

	// EnvHoldThresholdMS overrides the hold threshold.
	EnvHoldThresholdMS = "COMBONAVI_HOLD_THRESHOLD_MS"
)

// ConfigPath returns the settings file path, honoring the environment
// override.
func ConfigPath() string {
	if p, ok := os.LookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	return DefaultPath()
}

// applyEnv applies recognized environment overrides to cfg.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvGameProcess); ok && v != "" {
		cfg.Game.ProcessName = v
	}
	if v, ok := os.LookupEnv(EnvHoldThresholdMS); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.Input.HoldThresholdMS = ms
		}
	}
}
