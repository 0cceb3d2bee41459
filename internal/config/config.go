// Package config loads and saves the cbudget TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all cbudget configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency    string `toml:"currency"`
	InitialRows int    `toml:"initial_rows"`
}

// BudgetConfig prefills the form fields.
type BudgetConfig struct {
	DefaultIncome      string `toml:"default_income,omitempty"`
	DefaultSavingsGoal string `toml:"default_savings_goal,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`
	ChartHeight int    `toml:"chart_height"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:    "$",
			InitialRows: 1,
		},
		Appearance: AppearanceConfig{
			Theme:       "flexoki-dark",
			ChartHeight: 11,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cbudget")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// StateDir returns the XDG state directory used for logs and exports.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cbudget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "cbudget")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.InitialRows < 1 {
		cfg.General.InitialRows = 1
	}
	if cfg.Appearance.ChartHeight < 5 {
		cfg.Appearance.ChartHeight = DefaultConfig().Appearance.ChartHeight
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// LogLevel returns the level from CBUDGET_LOG_LEVEL or config, in that order.
func LogLevel(cfg Config) string {
	if lvl := os.Getenv("CBUDGET_LOG_LEVEL"); lvl != "" {
		return strings.ToLower(lvl)
	}
	return strings.ToLower(cfg.Logging.Level)
}

// LogFile returns the configured log file or the default under StateDir.
func LogFile(cfg Config) string {
	if cfg.Logging.File != "" {
		return cfg.Logging.File
	}
	return filepath.Join(StateDir(), "cbudget.log")
}

// CurrencySymbol returns the configured symbol, defaulting to "$".
func CurrencySymbol(cfg Config) string {
	if cfg.General.Currency == "" {
		return "$"
	}
	return cfg.General.Currency
}
