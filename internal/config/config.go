// Package config handles loading the shopfront configuration file.
// Settings live in ~/.config/shopfront/config.toml and may be
// overridden with SHOPFRONT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything shopfront reads at startup.
type Config struct {
	DataDir        string        // snapshots and log file live here
	ToastDuration  time.Duration // auto-dismiss delay for notifications
	SearchDebounce time.Duration // quiet period before a search commit
}

const (
	defaultConfigPath     = "~/.config/shopfront/config.toml"
	defaultDataDir        = "~/.local/share/shopfront"
	defaultToastDuration  = 2500 * time.Millisecond
	defaultSearchDebounce = 300 * time.Millisecond
)

// envOverrides mirrors the config fields for the environment overlay:
// SHOPFRONT_DATA_DIR, SHOPFRONT_TOAST_DURATION_MS, SHOPFRONT_SEARCH_DEBOUNCE_MS.
type envOverrides struct {
	DataDir          string `envconfig:"DATA_DIR"`
	ToastDurationMS  int    `envconfig:"TOAST_DURATION_MS"`
	SearchDebounceMS int    `envconfig:"SEARCH_DEBOUNCE_MS"`
}

// Load reads the config file at path (default location when empty),
// falling back to defaults when the file is missing, then applies any
// environment overrides. A file that exists but does not parse is an
// error: the config is developer-owned, unlike prefs.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:        mustExpand(defaultDataDir),
		ToastDuration:  defaultToastDuration,
		SearchDebounce: defaultSearchDebounce,
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		var raw struct {
			DataDir          string `toml:"data_dir"`
			ToastDurationMS  int    `toml:"toast_duration_ms"`
			SearchDebounceMS int    `toml:"search_debounce_ms"`
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if dir := strings.TrimSpace(raw.DataDir); dir != "" {
			cfg.DataDir = mustExpand(dir)
		}
		if raw.ToastDurationMS > 0 {
			cfg.ToastDuration = time.Duration(raw.ToastDurationMS) * time.Millisecond
		}
		if raw.SearchDebounceMS > 0 {
			cfg.SearchDebounce = time.Duration(raw.SearchDebounceMS) * time.Millisecond
		}
	}

	var env envOverrides
	if err := envconfig.Process("shopfront", &env); err != nil {
		return Config{}, fmt.Errorf("process env overrides: %w", err)
	}
	if dir := strings.TrimSpace(env.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if env.ToastDurationMS > 0 {
		cfg.ToastDuration = time.Duration(env.ToastDurationMS) * time.Millisecond
	}
	if env.SearchDebounceMS > 0 {
		cfg.SearchDebounce = time.Duration(env.SearchDebounceMS) * time.Millisecond
	}

	return cfg, nil
}

// LogPath returns the path of the application log file.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "shopfront.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
