// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the record viewer.
type KeyMap struct {
	// List navigation.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding // Select the row under the cursor.

	// List filter.
	FilterActivate key.Binding
	FilterClear    key.Binding

	// Edit form.
	NextField     key.Binding
	PreviousField key.Binding
	Press         key.Binding // Press the focused button.
	Save          key.Binding

	// Tab switching. The function keys work everywhere; the digit
	// keys only when no text field has focus.
	TabList        key.Binding
	TabDetail      key.Binding
	TabEdit        key.Binding
	TabListDigit   key.Binding
	TabDetailDigit key.Binding
	TabEditDigit   key.Binding
	TabNext        key.Binding
	TabPrevious    key.Binding

	// Quit is ignored while a text field has focus; ForceQuit never is.
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-tab", "previous field"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save"),
	),
	TabList: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "list"),
	),
	TabDetail: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("F2", "detail"),
	),
	TabEdit: key.NewBinding(
		key.WithKeys("f3"),
		key.WithHelp("F3", "edit"),
	),
	TabListDigit: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "list"),
	),
	TabDetailDigit: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "detail"),
	),
	TabEditDigit: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "edit"),
	),
	TabNext: key.NewBinding(
		key.WithKeys("ctrl+right"),
		key.WithHelp("C-→", "next tab"),
	),
	TabPrevious: key.NewBinding(
		key.WithKeys("ctrl+left"),
		key.WithHelp("C-←", "previous tab"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
