// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Class names for the styled elements of the record viewer. Panes and
// rows carry one of these, and [Theme.ClassStyle] maps it to a style.
const (
	ClassList         = "list"
	ClassListItem     = "list-item"
	ClassListItemName = "list-item-name"
	ClassListItemDate = "list-item-date"
	ClassSelected     = "selected"
	ClassDetail       = "detail"
	ClassEdit         = "edit"
	ClassTab          = "tab"
	ClassTabActive    = "tab-active"
)

// Theme defines the color palette for Recordbook's terminal UI. All
// colors are ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Cursor row (keyboard position, distinct from selection).
	CursorBackground lipgloss.Color

	// Accent for focused controls: the active tab, the focused edit
	// field, the scrollbar thumb.
	AccentColor lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Filter match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Modal boxes (the save acknowledgment).
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// ClassStyle returns the style for a class name. Unknown classes get
// plain normal text.
func (theme Theme) ClassStyle(class string) lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(theme.NormalText)
	switch class {
	case ClassListItem:
		return base
	case ClassListItemName:
		return base.Bold(true)
	case ClassListItemDate:
		return lipgloss.NewStyle().Foreground(theme.FaintText)
	case ClassSelected:
		return lipgloss.NewStyle().
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground)
	case ClassDetail, ClassEdit, ClassList:
		return base.Padding(0, 1)
	case ClassTab:
		return lipgloss.NewStyle().Foreground(theme.FaintText)
	case ClassTabActive:
		return lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(theme.HeaderForeground)
	default:
		return base
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("24"), // dark blue
	SelectedForeground: lipgloss.Color("255"),

	CursorBackground: lipgloss.Color("236"),

	AccentColor: lipgloss.Color("31"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"),
}
