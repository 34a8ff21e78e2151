// Package config resolves runtime configuration for the todo CLI.
//
// Resolution order, later wins: built-in defaults, then an optional
// config.toml in the user config directory, then environment variables.
// This covers operator-facing knobs (where the files live, color, log
// level); the user-facing settings record lives in the settings package
// and keeps its own JSON file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// FileName is the optional configuration file, looked up under
// <user-config-dir>/todo-app/.
const FileName = "config.toml"

const appDirName = "todo-app"

// DefaultLogLevel keeps normal runs quiet; diagnostics appear only when
// the level is lowered explicitly.
const DefaultLogLevel = "warn"

// Config holds the resolved runtime configuration.
type Config struct {
	// DataDir is the root under which the record file directory is
	// created (default: the user data directory).
	DataDir string `toml:"data_dir"`

	// ConfigDir is the root under which the settings directory is
	// created (default: the user config directory).
	ConfigDir string `toml:"config_dir"`

	// NoColor disables styled list output.
	NoColor bool `toml:"no_color"`

	// LogLevel controls diagnostic verbosity (debug|info|warn|error).
	LogLevel string `toml:"log_level"`
}

// Load resolves the configuration from the user's XDG directories, the
// optional config file, and the environment.
func Load() (*Config, error) {
	return load(xdg.ConfigHome, xdg.DataHome)
}

func load(configHome, dataHome string) (*Config, error) {
	cfg := &Config{
		DataDir:   dataHome,
		ConfigDir: configHome,
		LogLevel:  DefaultLogLevel,
	}

	if configHome != "" {
		path := filepath.Join(configHome, appDirName, FileName)
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.ConfigDir = expandPath(cfg.ConfigDir)
	return cfg, nil
}

// applyFile overlays values from the config file at path, if it exists.
func applyFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("Could not read %s: %v", FileName, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("Could not parse %s: %v", FileName, err)
	}
	return nil
}

// applyEnv overlays environment variables over cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TODO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODO_CONFIG_DIR"); v != "" {
		cfg.ConfigDir = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	// NO_COLOR follows the informal standard: any non-empty value
	// disables color.
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}
