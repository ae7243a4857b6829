// Package config handles configuration loading and persistence for translator
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/moderntranslator/internal/platform"
	"github.com/iiroan/moderntranslator/internal/settings"
	"github.com/iiroan/moderntranslator/internal/store"
)

// Environment overrides, usually supplied through a .env file at build time.
const (
	EnvStoreMode = "TRANSLATOR_STORE_MODE"
	EnvPlatform  = "TRANSLATOR_PLATFORM"
)

// Config represents the persisted state of the app
type Config struct {
	Settings settings.Record `yaml:"settings"`
	Ad       AdConfig        `yaml:"ad"`
	Store    store.Config    `yaml:"store"`

	// Platform overrides detection (windows, electron, other)
	Platform string `yaml:"platform,omitempty"`

	UI UIConfig `yaml:"ui"`
}

// AdConfig holds the ad visibility flag
type AdConfig struct {
	ShouldShowAd bool `yaml:"should_show_ad"`
}

// UIConfig holds terminal rendering preferences
type UIConfig struct {
	Dense   bool `yaml:"dense"`
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the configuration of a fresh install
func DefaultConfig() *Config {
	return &Config{
		Settings: settings.Defaults(),
		Ad:       AdConfig{ShouldShowAd: true},
		Store:    store.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error
	if err := c.Settings.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("settings: %w", err))
	}
	if _, err := store.ParseMode(c.Store.Mode); err != nil {
		errs = append(errs, fmt.Errorf("store.mode: %w", err))
	}
	if c.Platform != "" {
		if _, err := platform.Parse(c.Platform); err != nil {
			errs = append(errs, fmt.Errorf("platform: %w", err))
		}
	}
	return errors.Join(errs...)
}

// WithOverrides returns a copy of c with the environment and the --platform
// flag applied. The copy drives this run only; c keeps the file values.
func (c *Config) WithOverrides(getenv func(string) string, platformFlag string) *Config {
	out := *c
	out.Store.Bridge.Args = append([]string(nil), c.Store.Bridge.Args...)
	if mode := getenv(EnvStoreMode); mode != "" {
		out.Store.Mode = mode
	}
	if p := getenv(EnvPlatform); p != "" {
		out.Platform = p
	}
	if platformFlag != "" {
		out.Platform = platformFlag
	}
	return &out
}

// State returns the store state held by the configuration
func (c *Config) State() settings.State {
	return settings.State{
		Settings:     c.Settings,
		ShouldShowAd: c.Ad.ShouldShowAd,
	}
}

// SetState copies persisted fields from st
func (c *Config) SetState(st settings.State) {
	c.Settings = st.Settings
	c.Ad.ShouldShowAd = st.ShouldShowAd
}

// GetConfigPath returns the path to translator.yaml in the user config dir
func GetConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "translator", "translator.yaml"), nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error; variables already set win.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("parsing env file: %w", err)
	}
	return nil
}
