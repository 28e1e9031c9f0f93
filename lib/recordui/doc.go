// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package recordui implements the interactive record viewer: a list of
// records, a read-only detail view, and an edit form, arranged under a
// tab bar. It is built on bubbletea and consumes any [recordapi.API].
//
// # Modules
//
// Each view is a module that owns one root [Pane] and may subscribe to
// events from other modules:
//
//   - [ListModule] loads every record on Init and renders one row per
//     record. Activating a row marks it selected and publishes the
//     row's record on the module's selection topic.
//   - [DetailModule] subscribes to selections at construction and, for
//     each, fetches the record by ID and shows its name, number, and
//     formatted date.
//   - [EditModule] subscribes the same way and fills three text inputs
//     with the fetched values. Save sends them back through
//     UpdateRecord; Cancel clears the inputs.
//
// Fetches run as tea.Cmd and deliver result messages back to the
// owning module. Overlapping fetches are not sequenced: whichever
// result arrives last is what the view shows.
//
// # App
//
// [App] is the tea.Model that wires the modules together. It owns the
// [tui.TabBar], shows exactly one module pane at a time, routes keys
// and mouse events to the active module, and overlays a blocking
// "Record saved" alert after a successful save.
//
// API failures are never shown to the user. Every failed call leaves
// the view as it was and is logged at debug level.
//
// # Disposal
//
// Modules, the tab bar, and the App implement [tui.Disposable].
// Subscriptions are acquired in constructors and released by Dispose;
// a disposed module ignores input and late fetch results.
package recordui
