// Package config loads the optional reader configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the startup defaults for the viewer. Every field is optional
// in the file; omitted fields keep the values from Default.
type Config struct {
	ShowErrors     bool `yaml:"show_errors"`
	ShowWarnings   bool `yaml:"show_warnings"`
	ShowDisplay    bool `yaml:"show_display"`
	ShowDuplicates bool `yaml:"show_duplicates"`

	// ContextRadius is how many entries around the activated line the
	// context pane shows on each side.
	ContextRadius int `yaml:"context_radius"`

	// Watch reloads the file automatically when it changes on disk.
	Watch bool `yaml:"watch"`
}

// Default returns the built-in configuration: everything visible, five
// lines of context, no watching.
func Default() *Config {
	return &Config{
		ShowErrors:     true,
		ShowWarnings:   true,
		ShowDisplay:    true,
		ShowDuplicates: true,
		ContextRadius:  5,
	}
}

// DefaultPath returns the conventional config file location, or "" when the
// user config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unreal-log-reader", "config.yaml")
}

// Load reads and validates a configuration file, overlaying it on the
// defaults. A missing file at the default location is not an error; an
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for nonsense values.
func (c *Config) Validate() error {
	if c.ContextRadius < 0 {
		return errors.New("context_radius: must be >= 0")
	}
	return nil
}
