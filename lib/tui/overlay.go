// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content placed at (anchorX, anchorY). Truncation is
// ANSI-aware, so escape sequences in the original view survive on both
// sides of the overlay. View lines shorter than anchorX are padded.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		var result strings.Builder
		if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
			if viewLineWidth < anchorX {
				result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		if suffixStart := anchorX + overlayWidth; suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadOverlayLine pads styled content to innerWidth and adds one column
// of margin on each side, with the padding drawn in backgroundStyle.
// The result is innerWidth+2 columns wide.
func PadOverlayLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	rightPad := max(innerWidth-ansi.StringWidth(styledContent), 0)
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// PadRight pads a possibly styled string with spaces to width
// columns, or truncates it with an ellipsis when it is wider.
func PadRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	textWidth := ansi.StringWidth(text)
	if textWidth > width {
		return ansi.Truncate(text, width, "…")
	}
	return text + strings.Repeat(" ", width-textWidth)
}
