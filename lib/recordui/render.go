// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recordbook/recordbook/lib/tui"
)

// truncateString truncates text to maxWidth display columns.
func truncateString(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}

// padLines pads or trims lines to exactly height lines of width
// columns. Lines may contain embedded newlines.
func padLines(lines []string, width, height int) string {
	var flat []string
	for _, line := range lines {
		flat = append(flat, strings.Split(line, "\n")...)
	}
	if len(flat) > height {
		flat = flat[:max(height, 0)]
	}
	for index := range flat {
		flat[index] = tui.PadRight(flat[index], width)
	}
	for len(flat) < height {
		flat = append(flat, strings.Repeat(" ", max(width, 0)))
	}
	return strings.Join(flat, "\n")
}

// listScrollbar returns one gutter cell per visible row. The thumb
// spans the rows on screen out of total; when every row fits the gutter
// stays blank.
func listScrollbar(theme tui.Theme, height, total, offset int) []string {
	gutter := make([]string, max(height, 0))
	if total <= height {
		for row := range gutter {
			gutter[row] = " "
		}
		return gutter
	}

	thumb := max(height*height/total, 1)
	top := min(offset*(height-thumb)/(total-height), height-thumb)
	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	bar := lipgloss.NewStyle().Foreground(theme.AccentColor).Render("┃")
	for row := range gutter {
		if row >= top && row < top+thumb {
			gutter[row] = bar
		} else {
			gutter[row] = track
		}
	}
	return gutter
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
