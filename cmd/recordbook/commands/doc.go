// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the recordbook command tree: the viewer
// TUI and the list and show commands. Every command talks to the
// record service through [recordapi.Client]; the socket comes from
// --socket, then the config file, then the built-in default.
package commands
