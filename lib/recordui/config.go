// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"context"
	"log/slog"

	"github.com/recordbook/recordbook/lib/clock"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/tui"
)

// Config carries the settings shared by every module. The zero value
// is usable: [Config.withDefaults] fills in anything left unset.
type Config struct {
	// Theme styles every pane. Defaults to tui.DefaultTheme when
	// NormalText is unset.
	Theme tui.Theme

	// Keys is the key binding set. Defaults to DefaultKeyMap when its
	// Quit binding has no keys.
	Keys KeyMap

	// DateLayout is the Go time layout for displayed dates. Defaults
	// to record.DefaultDateLayout.
	DateLayout string

	// Logger receives debug logs for failed API calls. Nil discards.
	Logger *slog.Logger

	// Context is passed to every API call. Cancelling it aborts
	// in-flight fetches. Defaults to context.Background().
	Context context.Context

	// Clock is the reference for relative ages in the detail pane.
	// Defaults to clock.Real().
	Clock clock.Clock
}

func (config Config) withDefaults() Config {
	if config.Theme.NormalText == "" {
		config.Theme = tui.DefaultTheme
	}
	if len(config.Keys.Quit.Keys()) == 0 {
		config.Keys = DefaultKeyMap
	}
	if config.DateLayout == "" {
		config.DateLayout = record.DefaultDateLayout
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	return config
}
