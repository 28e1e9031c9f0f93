// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Alert is a blocking acknowledgment box centered over the view. While
// an alert is open its owner routes every key to it and nothing else
// reacts until it is dismissed.
type Alert struct {
	Message string
	theme   Theme
}

// NewAlert creates an alert showing message.
func NewAlert(message string, theme Theme) *Alert {
	return &Alert{Message: message, theme: theme}
}

// Dismissed reports whether key closes the alert. Enter, space, and
// esc dismiss; every other key is swallowed.
func (alert *Alert) Dismissed(key tea.KeyMsg) bool {
	switch key.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyEsc:
		return true
	}
	return false
}

const (
	// Border (2) plus horizontal margin (2).
	alertChromeWidth   = 4
	alertMinInnerWidth = 20
	alertFooter        = "enter to dismiss"
)

// Render produces the alert's overlay lines and the anchor (top-left
// corner) that centers them on a screen of the given size.
func (alert *Alert) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := ansi.StringWidth(alert.Message)
	if width := ansi.StringWidth(alertFooter); width > innerWidth {
		innerWidth = width
	}
	if innerWidth < alertMinInnerWidth {
		innerWidth = alertMinInnerWidth
	}
	if maxInner := screenWidth - alertChromeWidth; maxInner > 0 && innerWidth > maxInner {
		innerWidth = maxInner
	}

	backgroundStyle := lipgloss.NewStyle().Background(alert.theme.ModalBackground)
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(alert.theme.ModalForeground).
		Background(alert.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(alert.theme.FaintText).
		Background(alert.theme.ModalBackground)

	message := alert.Message
	if ansi.StringWidth(message) > innerWidth {
		message = ansi.Truncate(message, innerWidth, "…")
	}

	lines := []string{
		PadOverlayLine(messageStyle.Render(message), innerWidth, backgroundStyle),
		PadOverlayLine("", innerWidth, backgroundStyle),
		PadOverlayLine(footerStyle.Render(alertFooter), innerWidth, backgroundStyle),
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(alert.theme.BorderColor).
		BorderBackground(alert.theme.ModalBackground)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX := max((screenWidth-renderedWidth)/2, 0)
	anchorY := max((screenHeight-len(resultLines))/2, 0)
	return resultLines, anchorX, anchorY
}

// Overlay splices the rendered alert onto view, centered for a screen
// of the given size.
func (alert *Alert) Overlay(view string, screenWidth, screenHeight int) string {
	lines, anchorX, anchorY := alert.Render(screenWidth, screenHeight)
	return SpliceOverlay(view, lines, anchorX, anchorY)
}
