// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for Recordbook
// binaries.
//
// A configuration file is located by [Resolve]: an explicit --config
// path wins, then the RECORDBOOK_CONFIG environment variable, then the
// built-in [Default]. Values absent from the file keep their defaults.
//
// Path fields support ${VAR} and ${VAR:-default} expansion after
// loading. ${HOME} and ${XDG_RUNTIME_DIR} are the usual ones.
//
// Key exports:
//
//   - [Config] -- master struct with Service and Viewer sections
//   - [Default] -- a Config with per-user defaults
//   - [Load], [LoadFile], [Resolve] -- the loading entry points
//
// This package depends on no other Recordbook packages.
package config
