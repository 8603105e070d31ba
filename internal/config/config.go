package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Language selects the overlay display language.
type Language string

// Supported languages. Japanese is the default, matching the authored
// combo scripts.
const (
	LanguageJapanese           Language = "ja"
	LanguageEnglish            Language = "en"
	LanguageChineseSimplified  Language = "zh-Hans"
	LanguageChineseTraditional Language = "zh-Hant"
)

// KeyBindings holds the configurable key names. Values parse with
// key.FromName.
type KeyBindings struct {
	OpenSettings   string `toml:"open_settings"`
	ToggleOverlay  string `toml:"toggle_overlay"`
	NormalAttack   string `toml:"normal_attack"`
	ChainAttack    string `toml:"chain_attack"`
	Operator1Skill string `toml:"operator1_skill"`
	Operator2Skill string `toml:"operator2_skill"`
	Operator3Skill string `toml:"operator3_skill"`
	Operator4Skill string `toml:"operator4_skill"`
	HeavyAttack    string `toml:"heavy_attack"`
}

// OverlaySettings holds overlay geometry and opacity.
type OverlaySettings struct {
	// Opacity is 0.0-1.0; higher is more opaque.
	Opacity float64 `toml:"opacity"`
	X       int     `toml:"x"`
	Y       int     `toml:"y"`
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
}

// InputSettings holds discrimination timing. Both values are fixed at
// engine construction.
type InputSettings struct {
	// HoldThresholdMS is the minimum held duration for a hold step.
	HoldThresholdMS int `toml:"hold_threshold_ms"`

	// TickIntervalMS is the hold monitor cadence.
	TickIntervalMS int `toml:"tick_interval_ms"`
}

// GameSettings holds the process liveness check configuration.
type GameSettings struct {
	// ProcessName is matched case-insensitively against running
	// process names.
	ProcessName string `toml:"process_name"`

	// PollSeconds is the liveness check cadence.
	PollSeconds int `toml:"poll_seconds"`
}

// Config is the persisted application configuration.
type Config struct {
	Language    Language        `toml:"language"`
	KeyBindings KeyBindings     `toml:"key_bindings"`
	Overlay     OverlaySettings `toml:"overlay"`
	Input       InputSettings   `toml:"input"`
	Game        GameSettings    `toml:"game"`
	LogLevel    string          `toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Language: LanguageJapanese,
		KeyBindings: KeyBindings{
			OpenSettings:   "Home",
			ToggleOverlay:  "F1",
			NormalAttack:   "MouseLeft",
			ChainAttack:    "E",
			Operator1Skill: "1",
			Operator2Skill: "2",
			Operator3Skill: "3",
			Operator4Skill: "4",
			HeavyAttack:    "MouseLeft",
		},
		Overlay: OverlaySettings{
			Opacity: 0.8,
			X:       100,
			Y:       100,
			Width:   400,
			Height:  100,
		},
		Input: InputSettings{
			HoldThresholdMS: 300,
			TickIntervalMS:  50,
		},
		Game: GameSettings{
			ProcessName: "Endfield.exe",
			PollSeconds: 2,
		},
		LogLevel: "info",
	}
}

// Load reads configuration from a TOML file.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes configuration to a TOML file, creating parent directories
// as needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the config file path: config/General.toml next to
// the executable, falling back to a relative path.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "config", "General.toml")
	}
	return filepath.Join("config", "General.toml")
}

// LoadOrDefault loads the config at path, or returns (and best-effort
// persists) the defaults if it cannot be read. Environment overrides are
// applied in both cases.
func LoadOrDefault(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
		_ = Save(path, cfg)
	}
	applyEnv(&cfg)
	return cfg
}
