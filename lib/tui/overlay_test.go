// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlay(t *testing.T) {
	view := "abcdefghij\nklmnopqrst\nuvwxyz0123"

	result := ansi.Strip(SpliceOverlay(view, []string{"XY", "ZW"}, 3, 1))
	want := "abcdefghij\nklmXYpqrst\nuvwZWz0123"
	if result != want {
		t.Errorf("SpliceOverlay = %q, want %q", result, want)
	}
}

func TestSpliceOverlayClipsOutsideView(t *testing.T) {
	view := "aaaa\nbbbb"
	result := ansi.Strip(SpliceOverlay(view, []string{"1", "2", "3"}, 0, 1))
	if result != "aaaa\n1bbb" {
		t.Errorf("SpliceOverlay = %q, want %q", result, "aaaa\n1bbb")
	}
}

func TestSpliceOverlayPadsShortLines(t *testing.T) {
	result := ansi.Strip(SpliceOverlay("ab", []string{"X"}, 4, 0))
	if result != "ab  X" {
		t.Errorf("SpliceOverlay = %q, want %q", result, "ab  X")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abc", 3, "abc"},
		{"abc", 0, ""},
	}
	for _, test := range tests {
		if got := PadRight(test.text, test.width); got != test.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", test.text, test.width, got, test.want)
		}
	}
}
