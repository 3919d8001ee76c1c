package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// relativeConfigPath is looked up under the XDG config directories.
const relativeConfigPath = "iconfetch/config.toml"

var ErrConfigNotFound = errors.New("config file not found")

// DefaultPath returns the first config.toml found in the XDG config
// directories ($XDG_CONFIG_HOME/iconfetch/config.toml first).
func DefaultPath() (string, error) {
	path, err := xdg.SearchConfigFile(relativeConfigPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}
	return path, nil
}

// Load reads the config file at path. An empty path searches the XDG
// locations and falls back to defaults when nothing is found there. An
// explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := DefaultPath()
		if err != nil {
			cfg := NewDefaultConfig()
			cfg.applyEnv()
			if err := Validate(cfg); err != nil {
				return nil, fmt.Errorf("config: default configuration invalid: %w", err)
			}
			return cfg, nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile decodes the TOML file at path over the defaults, so keys missing
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Decode parses TOML bytes over the defaults, applies environment
// overrides and validates the result.
func Decode(data []byte) (*Config, error) {
	cfg := NewDefaultConfig()

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
	}

	cfg.applyEnv()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: failed to encode TOML: %w", err)
	}
	return nil
}
