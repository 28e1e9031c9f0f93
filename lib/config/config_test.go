// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recordbook.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	cfg := Default()

	if cfg.Service.SocketPath != "/run/user/1000/recordbook.sock" {
		t.Errorf("socket_path = %q", cfg.Service.SocketPath)
	}
	if cfg.Service.DatabasePath != "/home/tester/.local/share/recordbook/records.db" {
		t.Errorf("database_path = %q", cfg.Service.DatabasePath)
	}
	if cfg.Viewer.DateLayout != DefaultDateLayout {
		t.Errorf("date_layout = %q, want %q", cfg.Viewer.DateLayout, DefaultDateLayout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestDefaultSocketFallsBackToTmp(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	if got := Default().Service.SocketPath; got != "/tmp/recordbook.sock" {
		t.Errorf("socket_path = %q, want /tmp/recordbook.sock", got)
	}
}

func TestLoadRequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when RECORDBOOK_CONFIG not set, got nil")
	}
	if !strings.HasPrefix(err.Error(), "RECORDBOOK_CONFIG environment variable not set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path := writeConfig(t, `
service:
  socket_path: /srv/records.sock
  seed_file: ${HOME}/seed.jsonc
  watch_seed: true
  pool_size: 2
viewer:
  date_layout: "2006-01-02"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Service.SocketPath != "/srv/records.sock" {
		t.Errorf("socket_path = %q", cfg.Service.SocketPath)
	}
	if cfg.Service.SeedFile != "/home/tester/seed.jsonc" {
		t.Errorf("seed_file = %q, want expanded HOME", cfg.Service.SeedFile)
	}
	if !cfg.Service.WatchSeed {
		t.Error("watch_seed = false, want true")
	}
	if cfg.Service.PoolSize != 2 {
		t.Errorf("pool_size = %d, want 2", cfg.Service.PoolSize)
	}
	// Unset in the file, so the default survives.
	if cfg.Service.DatabasePath != "/home/tester/.local/share/recordbook/records.db" {
		t.Errorf("database_path = %q, want default", cfg.Service.DatabasePath)
	}
	if cfg.Viewer.DateLayout != "2006-01-02" {
		t.Errorf("date_layout = %q", cfg.Viewer.DateLayout)
	}
}

func TestLoadFileEmptyDateLayoutRestored(t *testing.T) {
	path := writeConfig(t, "viewer:\n  date_layout: \"\"\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Viewer.DateLayout != DefaultDateLayout {
		t.Errorf("date_layout = %q, want default", cfg.Viewer.DateLayout)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "service: [not, a, map]\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestResolve(t *testing.T) {
	flagPath := writeConfig(t, "service:\n  socket_path: /from/flag.sock\n")
	envPath := writeConfig(t, "service:\n  socket_path: /from/env.sock\n")

	tests := []struct {
		name     string
		flagPath string
		envPath  string
		want     string
	}{
		{"flag wins", flagPath, envPath, "/from/flag.sock"},
		{"environment", "", envPath, "/from/env.sock"},
		{"default", "", "", "/tmp/recordbook.sock"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(EnvironmentVariable, test.envPath)
			t.Setenv("XDG_RUNTIME_DIR", "")

			cfg, err := Resolve(test.flagPath)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if cfg.Service.SocketPath != test.want {
				t.Errorf("socket_path = %q, want %q", cfg.Service.SocketPath, test.want)
			}
		})
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("RECORDBOOK_TEST_VAR", "from-env")

	vars := map[string]string{"HOME": "/home/tester"}
	tests := []struct {
		input string
		want  string
	}{
		{"${HOME}/db", "/home/tester/db"},
		{"${RECORDBOOK_TEST_VAR}", "from-env"},
		{"${RECORDBOOK_UNSET_VAR:-fallback}", "fallback"},
		{"${RECORDBOOK_UNSET_VAR}", ""},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := expandVars(test.input, vars); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no socket", func(c *Config) { c.Service.SocketPath = "" }, "service.socket_path is required"},
		{"no database", func(c *Config) { c.Service.DatabasePath = "" }, "service.database_path is required"},
		{"negative pool", func(c *Config) { c.Service.PoolSize = -1 }, "service.pool_size must not be negative"},
		{"watch without seed", func(c *Config) { c.Service.WatchSeed = true }, "service.watch_seed requires service.seed_file"},
		{"no layout", func(c *Config) { c.Viewer.DateLayout = "" }, "viewer.date_layout is required"},
		{"literal layout", func(c *Config) { c.Viewer.DateLayout = "today" }, "contains no date or time fields"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.wantErr == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate error = %v, want containing %q", err, test.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := &Config{Service: ServiceConfig{PoolSize: -3}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, fragment := range []string{"socket_path", "database_path", "pool_size", "date_layout"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q does not mention %s", err, fragment)
		}
	}
}

func TestEnsureServiceDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Service.SocketPath = filepath.Join(root, "run", "records.sock")
	cfg.Service.DatabasePath = filepath.Join(root, "data", "nested", "records.db")

	if err := cfg.EnsureServiceDirectories(); err != nil {
		t.Fatalf("EnsureServiceDirectories: %v", err)
	}
	for _, directory := range []string{"run", filepath.Join("data", "nested")} {
		info, err := os.Stat(filepath.Join(root, directory))
		if err != nil || !info.IsDir() {
			t.Errorf("%s was not created: %v", directory, err)
		}
	}
}
