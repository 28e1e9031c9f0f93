// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/tui"
)

// DetailModule shows the name, number, and date of the most recently
// fetched record.
type DetailModule struct {
	api    recordapi.API
	config Config
	pane   *Pane

	name   string
	number string
	date   record.Date
	loaded bool

	width  int
	height int

	subscriptions tui.Subscriptions
}

// NewDetailModule creates the module and subscribes it to selections.
// Each selection fetches the record by ID; whichever fetch completes
// last determines the labels.
func NewDetailModule(api recordapi.API, selections tui.Publisher[record.Record], config Config) *DetailModule {
	detail := &DetailModule{
		api:    api,
		config: config.withDefaults(),
	}
	detail.subscriptions.Add(selections.Subscribe(detail.fetch))
	return detail
}

func (detail *DetailModule) fetch(selected record.Record) tea.Cmd {
	if detail.subscriptions.Disposed() {
		return nil
	}
	api := detail.api
	ctx := detail.config.Context
	id := selected.ID
	return func() tea.Msg {
		fetched, err := api.GetRecord(ctx, id)
		return detailFetchedMsg{owner: detail, id: id, record: fetched, err: err}
	}
}

// Element returns the module's root pane, creating it on first call.
func (detail *DetailModule) Element() *Pane {
	if detail.pane == nil {
		detail.pane = newPane(tui.ClassDetail)
	}
	return detail.pane
}

// Labels returns the name, number, and formatted date labels. All
// three are empty until the first fetch completes.
func (detail *DetailModule) Labels() [3]string {
	return [3]string{detail.name, detail.number, detail.date.Format(detail.config.DateLayout)}
}

// SetSize sets the pane dimensions.
func (detail *DetailModule) SetSize(width, height int) {
	detail.width = width
	detail.height = height
}

// CapturingText always returns false: the detail pane has no inputs.
func (detail *DetailModule) CapturingText() bool {
	return false
}

// Help returns the key hint for the help bar.
func (detail *DetailModule) Help() string {
	return "1 list  3 edit"
}

// Dispose closes the selection subscription. Labels keep their last
// values and results of fetches still in flight are dropped.
func (detail *DetailModule) Dispose() {
	detail.subscriptions.Dispose()
}

// Update applies fetch results addressed to this module.
func (detail *DetailModule) Update(message tea.Msg) tea.Cmd {
	fetched, ok := message.(detailFetchedMsg)
	if !ok || fetched.owner != detail || detail.subscriptions.Disposed() {
		return nil
	}
	if fetched.err != nil {
		detail.config.Logger.Debug("fetching record for detail failed",
			"id", fetched.id, "error", fetched.err)
		return nil
	}
	detail.name = fetched.record.Name
	detail.number = fetched.record.Number
	detail.date = fetched.record.Date
	detail.loaded = true
	return nil
}

// View renders the pane.
func (detail *DetailModule) View() string {
	theme := detail.config.Theme
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	labelStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	paneStyle := theme.ClassStyle(detail.Element().Class)

	if !detail.loaded {
		return paneStyle.Render(padLines([]string{faint.Render("Select a record in the list.")},
			max(detail.width-2, 0), detail.height))
	}

	labels := detail.Labels()
	dateValue := valueStyle.Render(labels[2])
	if !detail.date.IsZero() {
		dateValue += faint.Render("  (" + humanize.RelTime(detail.date.Time(), detail.config.Clock.Now(), "ago", "from now") + ")")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Name", valueStyle.Render(labels[0])},
		{"Number", valueStyle.Render(labels[1])},
		{"Date", dateValue},
	}

	var lines []string
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(row.label+strings.Repeat(" ", 8-len(row.label)))+row.value)
	}
	return paneStyle.Render(padLines(lines, max(detail.width-2, 0), detail.height))
}
