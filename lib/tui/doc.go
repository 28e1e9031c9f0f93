// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal UI components for Recordbook,
// built on bubbletea (Elm architecture).
//
// [Topic] and [Publisher] are typed, synchronous event channels used
// for communication between view modules: a module publishes from its
// Update, and listeners return commands that bubbletea runs. A
// component collects what it subscribes in a [Subscriptions] set and
// releases it all in Dispose.
//
// The visual pieces are the [Theme] with its class-name styles, the
// [TabBar] and the blocking [Alert] box spliced over a view with
// [SpliceOverlay]. [FuzzyMatch] wraps fzf for list filtering.
package tui
