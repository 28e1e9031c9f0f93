// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

// Pane is a module's root element: a styled region that the App shows
// or hides as tabs change. A module returns the same *Pane for its
// whole lifetime.
type Pane struct {
	// Class is the theme class used for the pane's frame.
	Class  string
	hidden bool
}

func newPane(class string) *Pane {
	return &Pane{Class: class}
}

// Visible reports whether the pane is shown.
func (pane *Pane) Visible() bool {
	return !pane.hidden
}

// Show makes the pane visible.
func (pane *Pane) Show() {
	pane.hidden = false
}

// Hide hides the pane.
func (pane *Pane) Hide() {
	pane.hidden = true
}
