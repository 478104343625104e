// Package config loads the application configuration from
// ~/.eventtocommand/config.yaml, falling back to defaults when the file
// is absent. The bindings section is the sample's "markup": it declares
// which entry event is bridged to which view-model command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Entry    EntryConfig     `yaml:"entry"`
	Bindings []BindingConfig `yaml:"bindings"`
	Theme    Theme           `yaml:"theme"`
}

// EntryConfig configures the demo's entry control.
type EntryConfig struct {
	Placeholder string `yaml:"placeholder"`
	Width       int    `yaml:"width"`
}

// BindingConfig declares one event-to-command bridge on the entry.
type BindingConfig struct {
	Event   string `yaml:"event"`
	Command string `yaml:"command"`
}

// Theme holds the UI colors.
type Theme struct {
	Accent string `yaml:"accent"`
	Subtle string `yaml:"subtle"`
	Border string `yaml:"border"`
	Dialog string `yaml:"dialog"`
}

// Default returns the built-in configuration: both sample bindings
// wired, default placeholder and colors.
func Default() *Config {
	return &Config{
		Entry: EntryConfig{
			Placeholder: "Type something...",
			Width:       40,
		},
		Bindings: []BindingConfig{
			{Event: "Focused", Command: "FocusedCommand"},
			{Event: "TextChanged", Command: "TextChangedCommand"},
		},
		Theme: Theme{
			Accent: "205",
			Subtle: "241",
			Border: "62",
			Dialog: "170",
		},
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom loads config from an explicit path, applying defaults for
// any missing values. A missing file yields the default config.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Entry.Placeholder == "" {
		c.Entry.Placeholder = def.Entry.Placeholder
	}
	if c.Entry.Width <= 0 {
		c.Entry.Width = def.Entry.Width
	}
	if len(c.Bindings) == 0 {
		c.Bindings = def.Bindings
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = def.Theme.Accent
	}
	if c.Theme.Subtle == "" {
		c.Theme.Subtle = def.Theme.Subtle
	}
	if c.Theme.Border == "" {
		c.Theme.Border = def.Theme.Border
	}
	if c.Theme.Dialog == "" {
		c.Theme.Dialog = def.Theme.Dialog
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".eventtocommand", "config.yaml"), nil
}
