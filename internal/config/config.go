// Package config holds the runtime settings, loaded from defaults
// then overridden by TASKPAD_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Store backend names accepted by TASKPAD_STORE.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Theme names accepted by TASKPAD_THEME.
const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

type Config struct {
	DataDir string `env:"TASKPAD_DATA_DIR"`
	Store   string `env:"TASKPAD_STORE"`
	Theme   string `env:"TASKPAD_THEME"`
}

// New returns the defaults: a dot directory in the user's home, the
// JSON file backend, the classic theme.
func New() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir: filepath.Join(home, ".taskpad"),
		Store:   StoreJSON,
		Theme:   ThemeClassic,
	}
}

// Load builds the configuration: defaults, then environment, then
// validation.
func Load() (*Config, error) {
	c := New()
	c.LoadFromEnvironment()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromEnvironment overrides fields set in the environment.
func (c *Config) LoadFromEnvironment() {
	if dir := os.Getenv("TASKPAD_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if st := os.Getenv("TASKPAD_STORE"); st != "" {
		c.Store = strings.ToLower(st)
	}
	if th := os.Getenv("TASKPAD_THEME"); th != "" {
		c.Theme = strings.ToLower(th)
	}
}

// Validate rejects settings no component can act on.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return &ConfigError{Field: "data_dir", Message: "data directory cannot be empty"}
	}
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return &ConfigError{Field: "store", Message: "unknown backend " + c.Store + " (want json or sqlite)"}
	}
	switch c.Theme {
	case ThemeClassic, ThemeNeon, ThemeMono:
	default:
		return &ConfigError{Field: "theme", Message: "unknown theme " + c.Theme + " (want classic, neon or mono)"}
	}
	return nil
}

// DatabasePath returns the SQLite file path inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "tasks.db")
}

// EnsureDataDir creates the data directory, user-private.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o700)
}

// ConfigError reports a setting that failed validation.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
