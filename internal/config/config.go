// Package config loads rover's optional YAML configuration.
//
// The file is looked up at $ROVER_CONFIG, then
// $XDG_CONFIG_HOME/rover/config.yaml, then ~/.config/rover/config.yaml.
// A missing file means defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultJump is the number of rows J/K move.
const DefaultJump = 10

// Config is the top-level configuration.
type Config struct {
	Jump    int                 `yaml:"jump,omitempty"`
	Keys    map[string][]string `yaml:"keys,omitempty"`   // command -> key names, replaces defaults
	Colors  map[string]string   `yaml:"colors,omitempty"` // role -> tcell color name
	LogFile string              `yaml:"log_file,omitempty"`
}

// DefaultConfig returns a Config with the stock settings.
func DefaultConfig() Config {
	return Config{
		Jump: DefaultJump,
	}
}

// Path resolves the configuration file location. It returns "" when no
// location can be determined.
func Path(getenv func(string) string) string {
	if p := getenv("ROVER_CONFIG"); p != "" {
		return p
	}
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rover", "config.yaml")
	}
	home := getenv("HOME")
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, ".config", "rover", "config.yaml")
}

// Load reads the configuration from its default location. The log file
// named by $ROVER_LOG takes precedence over the file's log_file.
func Load(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if path := Path(getenv); path != "" {
		var err error
		if cfg, err = LoadFrom(path); err != nil {
			return cfg, err
		}
	}
	if logFile := getenv("ROVER_LOG"); logFile != "" {
		cfg.LogFile = logFile
	}
	return cfg, nil
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the decoder cannot.
func (c Config) Validate() error {
	if c.Jump < 1 {
		return fmt.Errorf("jump must be at least 1, got %d", c.Jump)
	}
	for command, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: no keys given", command)
		}
	}
	return nil
}
