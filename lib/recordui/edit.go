// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/tui"
)

// Edit form focus positions. The three inputs come first, then the
// two buttons.
const (
	focusName = iota
	focusNumber
	focusDate
	focusSave
	focusCancel
	focusCount
)

const (
	saveLabel   = "[ Save ]"
	cancelLabel = "[ Cancel ]"
	buttonGap   = 2
	labelWidth  = 8
)

// buttonRow is the pane line holding the buttons: three input rows
// and a blank line above it.
const buttonRow = 4

// EditModule is a form over the most recently fetched record. Save
// writes the form back through the API; Cancel clears it.
type EditModule struct {
	api    recordapi.API
	config Config
	pane   *Pane

	inputs [3]textinput.Model
	focus  int

	// recordID is the ID of the last fetched record. Save always
	// targets it, whatever the inputs hold.
	recordID string

	width  int
	height int

	saved         tui.Topic[record.Record]
	subscriptions tui.Subscriptions
}

// NewEditModule creates the form and subscribes it to selections.
func NewEditModule(api recordapi.API, selections tui.Publisher[record.Record], config Config) *EditModule {
	edit := &EditModule{
		api:    api,
		config: config.withDefaults(),
		pane:   newPane(tui.ClassEdit),
	}

	placeholders := [3]string{"name", "number", record.ISODayLayout}
	for index := range edit.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = placeholders[index]
		input.Cursor.SetMode(cursor.CursorStatic)
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(edit.config.Theme.FaintText)
		input.TextStyle = lipgloss.NewStyle().Foreground(edit.config.Theme.NormalText)
		edit.inputs[index] = input
	}

	edit.subscriptions.Add(selections.Subscribe(edit.fetch))
	return edit
}

func (edit *EditModule) fetch(selected record.Record) tea.Cmd {
	if edit.subscriptions.Disposed() {
		return nil
	}
	api := edit.api
	ctx := edit.config.Context
	id := selected.ID
	return func() tea.Msg {
		fetched, err := api.GetRecord(ctx, id)
		return editFetchedMsg{owner: edit, id: id, record: fetched, err: err}
	}
}

// Saved announces each record that UpdateRecord accepted.
func (edit *EditModule) Saved() tui.Publisher[record.Record] {
	return &edit.saved
}

// Element returns the module's root pane.
func (edit *EditModule) Element() *Pane {
	return edit.pane
}

// Values returns the name, number, and date input values.
func (edit *EditModule) Values() [3]string {
	return [3]string{
		edit.inputs[focusName].Value(),
		edit.inputs[focusNumber].Value(),
		edit.inputs[focusDate].Value(),
	}
}

// SetValues replaces the input values, as if typed by the user.
func (edit *EditModule) SetValues(name, number, date string) {
	edit.inputs[focusName].SetValue(name)
	edit.inputs[focusNumber].SetValue(number)
	edit.inputs[focusDate].SetValue(date)
}

// RecordID returns the ID that Save will update.
func (edit *EditModule) RecordID() string {
	return edit.recordID
}

// FocusIndex returns the focused control: 0-2 for the inputs, 3 for
// Save, 4 for Cancel.
func (edit *EditModule) FocusIndex() int {
	return edit.focus
}

// Save sends the form to UpdateRecord. A date the form cannot parse
// is sent as the zero date.
func (edit *EditModule) Save() tea.Cmd {
	if edit.subscriptions.Disposed() {
		return nil
	}
	values := edit.Values()
	date, err := record.ParseDate(strings.TrimSpace(values[2]))
	if err != nil {
		edit.config.Logger.Debug("unparseable date in edit form", "value", values[2], "error", err)
		date = record.Date{}
	}
	updated := record.Record{
		ID:     edit.recordID,
		Name:   values[0],
		Number: values[1],
		Date:   date,
	}

	api := edit.api
	ctx := edit.config.Context
	return func() tea.Msg {
		return recordSavedMsg{owner: edit, record: updated, err: api.UpdateRecord(ctx, updated)}
	}
}

// Cancel clears all three inputs.
func (edit *EditModule) Cancel() {
	for index := range edit.inputs {
		edit.inputs[index].SetValue("")
	}
}

// Focus gives keyboard focus to the current control. The App calls it
// when the edit tab becomes active.
func (edit *EditModule) Focus() tea.Cmd {
	return edit.setFocus(edit.focus)
}

// Blur removes keyboard focus from every input.
func (edit *EditModule) Blur() {
	for index := range edit.inputs {
		edit.inputs[index].Blur()
	}
}

func (edit *EditModule) setFocus(target int) tea.Cmd {
	edit.focus = (target%focusCount + focusCount) % focusCount
	edit.Blur()
	if edit.focus < len(edit.inputs) {
		return edit.inputs[edit.focus].Focus()
	}
	return nil
}

// CapturingText reports whether an input has focus, in which case
// printable keys belong to the input.
func (edit *EditModule) CapturingText() bool {
	return edit.focus < len(edit.inputs)
}

// SetSize sets the pane dimensions.
func (edit *EditModule) SetSize(width, height int) {
	edit.width = width
	edit.height = height
	for index := range edit.inputs {
		edit.inputs[index].Width = max(width-labelWidth-3, 1)
	}
}

// Help returns the key hint for the help bar.
func (edit *EditModule) Help() string {
	return "tab next  enter press  C-s save  F1 list"
}

// Dispose closes the selection subscription and drops every saved
// listener. Inputs keep their values.
func (edit *EditModule) Dispose() {
	edit.subscriptions.Dispose()
	edit.saved.Clear()
}

// Update handles fetch and save results addressed to this module,
// and keys and mouse events while the edit tab is active.
func (edit *EditModule) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case editFetchedMsg:
		if message.owner != edit || edit.subscriptions.Disposed() {
			return nil
		}
		if message.err != nil {
			edit.config.Logger.Debug("fetching record for edit failed",
				"id", message.id, "error", message.err)
			return nil
		}
		edit.recordID = message.record.ID
		edit.SetValues(message.record.Name, message.record.Number, message.record.Date.String())
		return nil

	case recordSavedMsg:
		if message.owner != edit || edit.subscriptions.Disposed() {
			return nil
		}
		if message.err != nil {
			edit.config.Logger.Debug("updating record failed",
				"id", message.record.ID, "error", message.err)
			return nil
		}
		return edit.saved.Publish(message.record)

	case tea.KeyMsg:
		if edit.subscriptions.Disposed() {
			return nil
		}
		return edit.handleKey(message)

	case tea.MouseMsg:
		if edit.subscriptions.Disposed() {
			return nil
		}
		return edit.handleMouse(message)
	}
	return nil
}

func (edit *EditModule) handleKey(message tea.KeyMsg) tea.Cmd {
	keys := edit.config.Keys
	switch {
	case key.Matches(message, keys.Save):
		return edit.Save()
	case key.Matches(message, keys.NextField):
		return edit.setFocus(edit.focus + 1)
	case key.Matches(message, keys.PreviousField):
		return edit.setFocus(edit.focus - 1)
	}

	if !edit.CapturingText() {
		if key.Matches(message, keys.Press) {
			return edit.press(edit.focus)
		}
		return nil
	}

	if message.Type == tea.KeyEnter {
		return edit.setFocus(edit.focus + 1)
	}
	var cmd tea.Cmd
	edit.inputs[edit.focus], cmd = edit.inputs[edit.focus].Update(message)
	return cmd
}

func (edit *EditModule) press(control int) tea.Cmd {
	switch control {
	case focusSave:
		return edit.Save()
	case focusCancel:
		edit.Cancel()
	}
	return nil
}

// handleMouse focuses an input or presses a button on left click.
// Coordinates are relative to the pane's top-left corner.
func (edit *EditModule) handleMouse(message tea.MouseMsg) tea.Cmd {
	if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
		return nil
	}
	if message.Y >= 0 && message.Y < len(edit.inputs) {
		return edit.setFocus(message.Y)
	}
	if message.Y != buttonRow {
		return nil
	}
	control := edit.buttonAt(message.X)
	if control < 0 {
		return nil
	}
	cmd := edit.setFocus(control)
	return tea.Batch(cmd, edit.press(control))
}

// buttonAt maps a pane column to focusSave, focusCancel, or -1.
func (edit *EditModule) buttonAt(x int) int {
	// The pane has one column of left padding.
	saveStart := 1
	saveEnd := saveStart + len(saveLabel)
	cancelStart := saveEnd + buttonGap
	cancelEnd := cancelStart + len(cancelLabel)
	switch {
	case x >= saveStart && x < saveEnd:
		return focusSave
	case x >= cancelStart && x < cancelEnd:
		return focusCancel
	}
	return -1
}

// View renders the pane.
func (edit *EditModule) View() string {
	theme := edit.config.Theme
	labelStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	focusedLabelStyle := labelStyle.Foreground(theme.AccentColor)

	labels := [3]string{"Name", "Number", "Date"}
	var lines []string
	for index, label := range labels {
		style := labelStyle
		if edit.focus == index {
			style = focusedLabelStyle
		}
		lines = append(lines, style.Render(label+strings.Repeat(" ", labelWidth-len(label)))+edit.inputs[index].View())
	}
	lines = append(lines, "")

	buttonStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	focusedButtonStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground).
		Bold(true)
	renderButton := func(label string, control int) string {
		if edit.focus == control {
			return focusedButtonStyle.Render(label)
		}
		return buttonStyle.Render(label)
	}
	lines = append(lines, renderButton(saveLabel, focusSave)+
		strings.Repeat(" ", buttonGap)+
		renderButton(cancelLabel, focusCancel))

	return theme.ClassStyle(edit.pane.Class).Render(padLines(lines, max(edit.width-2, 0), edit.height))
}
