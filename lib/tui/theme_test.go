// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func TestClassStyleDistinguishesSelection(t *testing.T) {
	theme := DefaultTheme

	selected := theme.ClassStyle(ClassSelected)
	if selected.GetBackground() != theme.SelectedBackground {
		t.Errorf("selected background = %v, want %v", selected.GetBackground(), theme.SelectedBackground)
	}
	if !theme.ClassStyle(ClassListItemName).GetBold() {
		t.Error("list-item-name should be bold")
	}
	if theme.ClassStyle(ClassListItemDate).GetForeground() != theme.FaintText {
		t.Error("list-item-date should use the faint text color")
	}
	if !theme.ClassStyle(ClassTabActive).GetBold() || theme.ClassStyle(ClassTab).GetBold() {
		t.Error("only the active tab should be bold")
	}
	if theme.ClassStyle("no-such-class").GetForeground() != theme.NormalText {
		t.Error("unknown classes should fall back to normal text")
	}
}
