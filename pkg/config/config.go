// Package config loads optional runner settings for the cobolt CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the complete runner configuration.
type Config struct {
	Run     RunConfig     `toml:"run"`
	Inspect InspectConfig `toml:"inspect"`
}

// RunConfig holds defaults for the run command.
type RunConfig struct {
	// Program is the source file run when none is given on the
	// command line. Empty means the built-in demo.
	Program string `toml:"program"`
}

// InspectConfig holds settings for the inspect command.
type InspectConfig struct {
	// Plain disables styled terminal output.
	Plain bool `toml:"plain"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{}
}

// Load reads the config at path when it exists, falling back to the
// defaults when it does not.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
