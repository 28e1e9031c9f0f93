// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TabBar is a row of labelled tabs embedded in a horizontal rule:
//
//	─── 1:List ─── 2:Detail ─── 3:Edit ──────────
//
// It tracks the selected index and announces selection requests on a
// [Topic]. The bar itself does not switch anything; its owner
// subscribes and decides what a selection means.
type TabBar struct {
	labels     []string
	selected   int
	selections Topic[int]
	theme      Theme
	hitRanges  []tabHitRange
	disposed   bool
}

type tabHitRange struct {
	startX int
	endX   int
	index  int
}

// NewTabBar creates a tab bar with the given labels. The first tab
// starts selected.
func NewTabBar(theme Theme, labels ...string) *TabBar {
	bar := &TabBar{
		labels: labels,
		theme:  theme,
	}
	bar.computeHitRanges()
	return bar
}

// Selections returns the topic on which selection requests are
// published. Listeners receive the requested index, which may be out
// of range when the request came from Select with a bad index.
func (bar *TabBar) Selections() Publisher[int] {
	return &bar.selections
}

// Selected returns the index of the highlighted tab.
func (bar *TabBar) Selected() int {
	return bar.selected
}

// Labels returns the tab labels.
func (bar *TabBar) Labels() []string {
	return bar.labels
}

// Select requests tab index. An in-range index becomes the
// highlighted tab; the request is published either way. Returns nil
// once the bar is disposed.
func (bar *TabBar) Select(index int) tea.Cmd {
	if bar.disposed {
		return nil
	}
	if index >= 0 && index < len(bar.labels) {
		bar.selected = index
	}
	return bar.selections.Publish(index)
}

// Next selects the tab after the current one, wrapping around.
func (bar *TabBar) Next() tea.Cmd {
	if len(bar.labels) == 0 {
		return nil
	}
	return bar.Select((bar.selected + 1) % len(bar.labels))
}

// Previous selects the tab before the current one, wrapping around.
func (bar *TabBar) Previous() tea.Cmd {
	if len(bar.labels) == 0 {
		return nil
	}
	return bar.Select((bar.selected + len(bar.labels) - 1) % len(bar.labels))
}

// HitTest returns the tab index under column x of the bar's line, or
// -1.
func (bar *TabBar) HitTest(x int) int {
	for _, hit := range bar.hitRanges {
		if x >= hit.startX && x < hit.endX {
			return hit.index
		}
	}
	return -1
}

// Dispose drops every listener. Later Select calls do nothing.
func (bar *TabBar) Dispose() {
	bar.disposed = true
	bar.selections.Clear()
}

func (bar *TabBar) displayLabel(index int) string {
	return strconv.Itoa(index+1) + ":" + bar.labels[index]
}

// computeHitRanges records the X extent of each label. The layout
// matches View: a leading "───", then " label " and a "───" separator
// per tab.
func (bar *TabBar) computeHitRanges() {
	bar.hitRanges = bar.hitRanges[:0]
	cursor := 3

	for index := range bar.labels {
		cursor++ // Space before label.
		labelStart := cursor
		cursor += lipgloss.Width(bar.displayLabel(index))

		bar.hitRanges = append(bar.hitRanges, tabHitRange{
			startX: labelStart,
			endX:   cursor,
			index:  index,
		})

		cursor++    // Space after label.
		cursor += 3 // Separator.
	}
}

// View renders the bar as a single line of the given width.
func (bar *TabBar) View(width int) string {
	separatorStyle := lipgloss.NewStyle().Foreground(bar.theme.BorderColor)
	activeStyle := bar.theme.ClassStyle(ClassTabActive)
	inactiveStyle := bar.theme.ClassStyle(ClassTab)

	rule := separatorStyle.Render("───")

	var line strings.Builder
	line.WriteString(rule)
	cursor := 3
	for index := range bar.labels {
		label := bar.displayLabel(index)
		line.WriteString(" ")
		if index == bar.selected {
			line.WriteString(activeStyle.Render(label))
		} else {
			line.WriteString(inactiveStyle.Render(label))
		}
		line.WriteString(" ")
		line.WriteString(rule)
		cursor += 1 + lipgloss.Width(label) + 1 + 3
	}

	if fill := width - cursor; fill > 0 {
		line.WriteString(separatorStyle.Render(strings.Repeat("─", fill)))
	}
	return line.String()
}
