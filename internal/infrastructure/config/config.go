// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/pairgen/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for pairgen configuration.
	DefaultConfigDir = ".pairgen"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds pairing configuration (read-only after load).
type Config struct {
	// Mode is one of unconstrained, simple, scored.
	Mode string `yaml:"mode,omitempty"`
	// Categories holds the two recognized category tokens; the first names pool 1.
	Categories []string `yaml:"categories,omitempty"`
	// Tags labels the tag columns that follow name and category in scored mode.
	Tags []string `yaml:"tags,omitempty"`
	// Format is auto, csv, spreadsheet or json.
	Format string `yaml:"format,omitempty"`
	// Sheet selects the spreadsheet sheet; empty means the first one.
	Sheet string `yaml:"sheet,omitempty"`
	// Seed fixes the random source when non-zero.
	Seed uint64 `yaml:"seed,omitempty"`
	// FlattenCells turns every non-empty cell into a name (unconstrained mode only).
	FlattenCells bool `yaml:"flatten_cells,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Mode:       string(entities.ModeUnconstrained),
		Categories: []string{string(entities.CategoryMale), string(entities.CategoryFemale)},
		Tags:       []string{"class", "department"},
		Format:     "auto",
	}
}

// Load loads configuration from the .pairgen directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", ConfigFilePath(basePath), err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	mode, ok := entities.ParseMode(c.Mode)
	if !ok {
		return fmt.Errorf("invalid mode %q (valid: %v)", c.Mode, entities.ValidModes)
	}

	if mode.RequiresCategory() {
		if len(c.Categories) != 2 {
			return fmt.Errorf("categories must list exactly two tokens, got %d", len(c.Categories))
		}
		if !c.CategorySet().Valid() {
			return fmt.Errorf("categories must be two distinct non-empty tokens, got %q", c.Categories)
		}
	}

	if mode == entities.ModeScored && len(c.Tags) == 0 {
		return errors.New("scored mode requires at least one tag column")
	}

	return nil
}

// PairingMode returns the parsed mode. Call Validate first.
func (c *Config) PairingMode() entities.Mode {
	mode, _ := entities.ParseMode(c.Mode)
	return mode
}

// CategorySet returns the normalized category tokens.
func (c *Config) CategorySet() entities.CategorySet {
	var set entities.CategorySet
	for i := 0; i < len(c.Categories) && i < len(set); i++ {
		set[i] = entities.NormalizeCategory(c.Categories[i])
	}
	return set
}

// ConfigDir returns the path to the .pairgen config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a pairgen config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
