// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "RECORDBOOK_CONFIG"

// DefaultDateLayout matches record.DefaultDateLayout. It is repeated
// here so this package stays free of Recordbook imports.
const DefaultDateLayout = "1/2/2006, 3:04:05 PM"

// Config is the master configuration structure.
type Config struct {
	// Service configures the record service daemon. The viewer and
	// CLI read SocketPath from here to find it.
	Service ServiceConfig `yaml:"service"`

	// Viewer configures the terminal UI.
	Viewer ViewerConfig `yaml:"viewer"`
}

// ServiceConfig holds record service settings.
type ServiceConfig struct {
	// SocketPath is the Unix socket the service listens on.
	SocketPath string `yaml:"socket_path"`

	// DatabasePath is the SQLite database file.
	DatabasePath string `yaml:"database_path"`

	// SeedFile, when set, is a JSONC array of records upserted into
	// the store at startup.
	SeedFile string `yaml:"seed_file"`

	// WatchSeed re-applies SeedFile whenever it is rewritten while
	// the service runs.
	WatchSeed bool `yaml:"watch_seed"`

	// PoolSize is the number of SQLite connections. Zero uses the
	// pool default.
	PoolSize int `yaml:"pool_size"`
}

// ViewerConfig holds terminal UI settings.
type ViewerConfig struct {
	// DateLayout is the Go time layout used to display dates in the
	// list and detail views.
	DateLayout string `yaml:"date_layout"`

	// LogOutput is a file that receives JSON debug logs. Empty
	// discards logs, since stderr belongs to the UI.
	LogOutput string `yaml:"log_output"`
}

// Default returns the built-in configuration with variables expanded.
func Default() *Config {
	cfg := &Config{
		Service: ServiceConfig{
			SocketPath:   "${XDG_RUNTIME_DIR:-/tmp}/recordbook.sock",
			DatabasePath: "${HOME}/.local/share/recordbook/records.db",
		},
		Viewer: ViewerConfig{
			DateLayout: DefaultDateLayout,
		},
	}
	cfg.expandVariables()
	return cfg
}

// Load loads the file named by the RECORDBOOK_CONFIG environment
// variable. It fails when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your recordbook.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Viewer.DateLayout == "" {
		cfg.Viewer.DateLayout = DefaultDateLayout
	}
	cfg.expandVariables()
	return cfg, nil
}

// Resolve picks the configuration for a command: flagPath when set,
// then RECORDBOOK_CONFIG, then [Default].
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Service.SocketPath = expandVars(c.Service.SocketPath, vars)
	c.Service.DatabasePath = expandVars(c.Service.DatabasePath, vars)
	c.Service.SeedFile = expandVars(c.Service.SeedFile, vars)
	c.Viewer.LogOutput = expandVars(c.Viewer.LogOutput, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// referenceTime exercises every field a display layout could carry.
var referenceTime = time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Service.SocketPath == "" {
		errs = append(errs, fmt.Errorf("service.socket_path is required"))
	}
	if c.Service.DatabasePath == "" {
		errs = append(errs, fmt.Errorf("service.database_path is required"))
	}
	if c.Service.WatchSeed && c.Service.SeedFile == "" {
		errs = append(errs, fmt.Errorf("service.watch_seed requires service.seed_file"))
	}
	if c.Service.PoolSize < 0 {
		errs = append(errs, fmt.Errorf("service.pool_size must not be negative, got %d", c.Service.PoolSize))
	}
	if c.Viewer.DateLayout == "" {
		errs = append(errs, fmt.Errorf("viewer.date_layout is required"))
	} else if referenceTime.Format(c.Viewer.DateLayout) == c.Viewer.DateLayout {
		errs = append(errs, fmt.Errorf("viewer.date_layout %q contains no date or time fields", c.Viewer.DateLayout))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsureServiceDirectories creates the parent directories of the
// service socket and database.
func (c *Config) EnsureServiceDirectories() error {
	for _, path := range []string{c.Service.SocketPath, c.Service.DatabasePath} {
		if path == "" {
			continue
		}
		directory := filepath.Dir(path)
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", directory, err)
		}
	}
	return nil
}
