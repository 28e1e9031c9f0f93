// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestAlertDismissKeys(t *testing.T) {
	alert := NewAlert("Record saved", DefaultTheme)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, false},
	}
	for _, test := range tests {
		if got := alert.Dismissed(test.key); got != test.want {
			t.Errorf("%s: Dismissed = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestAlertRenderCentered(t *testing.T) {
	alert := NewAlert("Record saved", DefaultTheme)

	lines, anchorX, anchorY := alert.Render(80, 24)
	if len(lines) != 5 {
		t.Fatalf("alert has %d lines, want 5 (border, message, blank, footer, border)", len(lines))
	}
	width := ansi.StringWidth(lines[0])
	if anchorX != (80-width)/2 {
		t.Errorf("anchorX = %d, want %d", anchorX, (80-width)/2)
	}
	if anchorY != (24-5)/2 {
		t.Errorf("anchorY = %d, want %d", anchorY, (24-5)/2)
	}
	if !strings.Contains(ansi.Strip(lines[1]), "Record saved") {
		t.Errorf("message line = %q", ansi.Strip(lines[1]))
	}
}

func TestAlertOverlay(t *testing.T) {
	alert := NewAlert("Record saved", DefaultTheme)
	background := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")

	view := ansi.Strip(alert.Overlay(background, 40, 10))
	lines := strings.Split(view, "\n")
	if len(lines) != 10 {
		t.Fatalf("overlay changed line count to %d", len(lines))
	}
	if !strings.Contains(view, "Record saved") {
		t.Error("overlay does not contain the message")
	}
	for index, line := range lines {
		if ansi.StringWidth(line) != 40 {
			t.Errorf("line %d width = %d, want 40", index, ansi.StringWidth(line))
		}
	}
	if lines[0] != strings.Repeat(".", 40) {
		t.Errorf("first line should be untouched, got %q", lines[0])
	}
}
