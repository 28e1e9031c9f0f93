// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"

	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/tui"
)

// ListModule shows every record as a row of name and date. Activating
// a row selects it and publishes its record to subscribers of
// [ListModule.Selections].
type ListModule struct {
	api    recordapi.API
	config Config
	pane   *Pane

	// rows is every record in API order. The filter narrows what is
	// drawn through visible; rows itself only ever grows.
	rows     []record.Record
	selected int // Index into rows, or -1.

	// visible holds indexes into rows that pass the filter, in order.
	// cursor and scrollOffset index into visible.
	visible      []int
	highlights   map[int][]int // Row index → matched rune positions in the name.
	cursor       int
	scrollOffset int

	filterInput  string
	filterActive bool
	slab         *util.Slab

	width  int
	height int

	selections    tui.Topic[record.Record]
	subscriptions tui.Subscriptions
}

// NewListModule creates an empty list. Rows arrive after the command
// returned by Init completes.
func NewListModule(api recordapi.API, config Config) *ListModule {
	return &ListModule{
		api:      api,
		config:   config.withDefaults(),
		pane:     newPane(tui.ClassList),
		selected: -1,
		slab:     util.MakeSlab(100*1024, 2048),
	}
}

// Selections is the topic on which activated rows are announced.
func (list *ListModule) Selections() tui.Publisher[record.Record] {
	return &list.selections
}

// Element returns the module's root pane.
func (list *ListModule) Element() *Pane {
	return list.pane
}

// Init returns the command that loads the record list.
func (list *ListModule) Init() tea.Cmd {
	api := list.api
	ctx := list.config.Context
	return func() tea.Msg {
		records, err := api.ListRecords(ctx)
		return recordsLoadedMsg{owner: list, records: records, err: err}
	}
}

// Rows returns the loaded records in display order, ignoring the
// filter.
func (list *ListModule) Rows() []record.Record {
	return list.rows
}

// Selected returns the index of the selected row, or -1.
func (list *ListModule) Selected() int {
	return list.selected
}

// Cursor returns the row index under the keyboard cursor, or -1 when
// no row is visible.
func (list *ListModule) Cursor() int {
	if list.cursor < 0 || list.cursor >= len(list.visible) {
		return -1
	}
	return list.visible[list.cursor]
}

// Activate marks row index as the only selected row and publishes its
// record once. Out-of-range indexes and activation after Dispose do
// nothing.
func (list *ListModule) Activate(index int) tea.Cmd {
	if list.subscriptions.Disposed() {
		return nil
	}
	if index < 0 || index >= len(list.rows) {
		return nil
	}
	list.selected = index
	return list.selections.Publish(list.rows[index])
}

// CapturingText reports whether the filter input has keyboard focus.
func (list *ListModule) CapturingText() bool {
	return list.filterActive
}

// SetSize sets the pane dimensions.
func (list *ListModule) SetSize(width, height int) {
	list.width = width
	list.height = height
	list.ensureCursorVisible()
}

// Dispose releases the module's subscriptions and drops every
// selection listener. Rows stay rendered; activation stops working.
func (list *ListModule) Dispose() {
	list.subscriptions.Dispose()
	list.selections.Clear()
}

// Update handles list messages. Key and mouse messages are only
// delivered while the list is the active tab.
func (list *ListModule) Update(message tea.Msg) tea.Cmd {
	switch message := message.(type) {
	case recordsLoadedMsg:
		if message.owner != list || list.subscriptions.Disposed() {
			return nil
		}
		if message.err != nil {
			list.config.Logger.Debug("listing records failed", "error", message.err)
			return nil
		}
		list.rows = append(list.rows, message.records...)
		list.applyFilter()

	case tea.KeyMsg:
		if list.subscriptions.Disposed() {
			return nil
		}
		if list.filterActive {
			return list.handleFilterKey(message)
		}
		return list.handleKey(message)

	case tea.MouseMsg:
		if list.subscriptions.Disposed() {
			return nil
		}
		return list.handleMouse(message)
	}
	return nil
}

func (list *ListModule) handleKey(message tea.KeyMsg) tea.Cmd {
	keys := list.config.Keys
	switch {
	case key.Matches(message, keys.Up):
		list.moveCursor(-1)
	case key.Matches(message, keys.Down):
		list.moveCursor(1)
	case key.Matches(message, keys.PageUp):
		list.moveCursor(-max(list.rowsHeight(), 1))
	case key.Matches(message, keys.PageDown):
		list.moveCursor(max(list.rowsHeight(), 1))
	case key.Matches(message, keys.Home):
		list.moveCursor(-len(list.visible))
	case key.Matches(message, keys.End):
		list.moveCursor(len(list.visible))
	case key.Matches(message, keys.Activate):
		return list.Activate(list.Cursor())
	case key.Matches(message, keys.FilterActivate):
		list.filterActive = true
	case key.Matches(message, keys.FilterClear):
		list.clearFilter()
	}
	return nil
}

// handleFilterKey edits the filter query. Enter keeps the query and
// returns to navigation; esc clears it.
func (list *ListModule) handleFilterKey(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEsc:
		list.clearFilter()
	case tea.KeyEnter:
		list.filterActive = false
	case tea.KeyBackspace:
		if runes := []rune(list.filterInput); len(runes) > 0 {
			list.filterInput = string(runes[:len(runes)-1])
			list.applyFilter()
		}
	case tea.KeySpace:
		list.filterInput += " "
		list.applyFilter()
	case tea.KeyRunes:
		list.filterInput += string(message.Runes)
		list.applyFilter()
	case tea.KeyUp, tea.KeyDown:
		// Navigation keys work while typing so the user can move to a
		// match without leaving the filter.
		return list.handleKey(message)
	}
	return nil
}

func (list *ListModule) clearFilter() {
	list.filterActive = false
	if list.filterInput == "" {
		return
	}
	list.filterInput = ""
	list.applyFilter()
}

// applyFilter rebuilds visible from rows. The cursor stays on the same
// row when that row still passes the filter, and otherwise returns to
// the top.
func (list *ListModule) applyFilter() {
	previous := list.Cursor()

	list.visible = list.visible[:0]
	list.highlights = nil
	if list.filterInput == "" {
		for index := range list.rows {
			list.visible = append(list.visible, index)
		}
	} else {
		pattern := []rune(list.filterInput)
		list.highlights = make(map[int][]int)
		for index, entry := range list.rows {
			result := tui.FuzzyMatch(entry.Name, pattern, list.slab)
			if !result.Matched() {
				continue
			}
			list.visible = append(list.visible, index)
			list.highlights[index] = result.Positions
		}
	}

	list.cursor = 0
	for position, index := range list.visible {
		if index == previous {
			list.cursor = position
			break
		}
	}
	list.ensureCursorVisible()
}

func (list *ListModule) handleMouse(message tea.MouseMsg) tea.Cmd {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		list.scroll(-3)
	case tea.MouseButtonWheelDown:
		list.scroll(3)
	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return nil
		}
		position := list.scrollOffset + message.Y - list.headerHeight()
		if message.Y < list.headerHeight() || position < 0 || position >= len(list.visible) {
			return nil
		}
		list.cursor = position
		return list.Activate(list.visible[position])
	}
	return nil
}

func (list *ListModule) moveCursor(delta int) {
	if len(list.visible) == 0 {
		return
	}
	list.cursor = min(max(list.cursor+delta, 0), len(list.visible)-1)
	list.ensureCursorVisible()
}

func (list *ListModule) scroll(delta int) {
	maxOffset := max(len(list.visible)-list.rowsHeight(), 0)
	list.scrollOffset = min(max(list.scrollOffset+delta, 0), maxOffset)
}

// ensureCursorVisible adjusts scrollOffset so the cursor row is on
// screen.
func (list *ListModule) ensureCursorVisible() {
	height := list.rowsHeight()
	if height <= 0 {
		return
	}
	if list.cursor < list.scrollOffset {
		list.scrollOffset = list.cursor
	}
	if list.cursor >= list.scrollOffset+height {
		list.scrollOffset = list.cursor - height + 1
	}
	maxOffset := max(len(list.visible)-height, 0)
	list.scrollOffset = min(max(list.scrollOffset, 0), maxOffset)
}

// headerHeight is the number of lines above the rows: the filter line
// when a filter is being typed or applied.
func (list *ListModule) headerHeight() int {
	if list.filterActive || list.filterInput != "" {
		return 1
	}
	return 0
}

func (list *ListModule) rowsHeight() int {
	return list.height - list.headerHeight()
}

// Help returns the key hint for the help bar.
func (list *ListModule) Help() string {
	if list.filterActive {
		return "type to filter  enter done  esc clear"
	}
	return "↑↓ navigate  enter select  / filter"
}

// View renders the pane.
func (list *ListModule) View() string {
	theme := list.config.Theme
	paneStyle := theme.ClassStyle(list.pane.Class)
	width := max(list.width-paneStyle.GetHorizontalPadding(), 0)
	var lines []string

	if list.headerHeight() > 0 {
		prompt := lipgloss.NewStyle().Foreground(theme.AccentColor).Render("/")
		query := list.filterInput
		if list.filterActive {
			query += "█"
		}
		count := lipgloss.NewStyle().Foreground(theme.FaintText).
			Render(" " + itoa(len(list.visible)) + "/" + itoa(len(list.rows)))
		lines = append(lines, tui.PadRight(prompt+query+count, width))
	}

	height := list.rowsHeight()
	if len(list.rows) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.FaintText).Render("No records.")
		lines = append(lines, tui.PadRight(empty, width))
		return paneStyle.Render(padLines(lines, width, list.height))
	}

	rowWidth := width - 1 // Scrollbar gutter.
	var rowLines []string
	end := min(list.scrollOffset+height, len(list.visible))
	for position := list.scrollOffset; position < end; position++ {
		index := list.visible[position]
		rowLines = append(rowLines, list.renderRow(index, position == list.cursor, rowWidth))
	}
	for len(rowLines) < height {
		rowLines = append(rowLines, strings.Repeat(" ", max(rowWidth, 0)))
	}

	gutter := listScrollbar(theme, height, len(list.visible), list.scrollOffset)
	for row := range rowLines {
		lines = append(lines, tui.PadRight(rowLines[row], rowWidth)+gutter[row])
	}
	return paneStyle.Render(padLines(lines, width, list.height))
}

// dateColumnWidth fits the default layout ("12/31/2024, 12:00:00 AM").
const dateColumnWidth = 24

// renderRow draws one record: a cursor marker, the name label, and the
// date label right-aligned in its column.
func (list *ListModule) renderRow(index int, atCursor bool, width int) string {
	theme := list.config.Theme
	entry := list.rows[index]
	selected := index == list.selected

	marker := "  "
	if atCursor {
		marker = "› "
	}

	dateText := entry.Date.Format(list.config.DateLayout)
	dateWidth := min(max(dateColumnWidth, ansi.StringWidth(dateText)), max(width-4, 0))
	nameWidth := max(width-ansi.StringWidth(marker)-dateWidth-1, 0)

	name := truncateString(entry.Name, nameWidth)
	dateText = truncateString(dateText, dateWidth)

	nameStyle := theme.ClassStyle(tui.ClassListItemName)
	dateStyle := theme.ClassStyle(tui.ClassListItemDate)
	itemStyle := theme.ClassStyle(tui.ClassListItem)
	if selected {
		selectedStyle := theme.ClassStyle(tui.ClassSelected)
		nameStyle = selectedStyle.Bold(true)
		dateStyle = selectedStyle
		itemStyle = selectedStyle
	} else if atCursor {
		nameStyle = nameStyle.Background(theme.CursorBackground)
		dateStyle = dateStyle.Background(theme.CursorBackground)
		itemStyle = itemStyle.Background(theme.CursorBackground)
	}
	highlightStyle := nameStyle.Background(theme.SearchHighlightBackground)

	namePad := nameWidth - ansi.StringWidth(name)
	datePad := dateWidth - ansi.StringWidth(dateText)

	return itemStyle.Render(marker) +
		highlightName(name, list.highlights[index], nameStyle, highlightStyle) +
		itemStyle.Render(strings.Repeat(" ", namePad+1+datePad)) +
		dateStyle.Render(dateText)
}

// highlightName renders name with the runes at positions in
// highlightStyle and everything else in baseStyle.
func highlightName(name string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	if len(positions) == 0 || name == "" {
		return baseStyle.Render(name)
	}

	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	runes := []rune(name)
	var result strings.Builder
	runStart := 0
	isHighlighted := positionSet[0]

	for index := 1; index <= len(runes); index++ {
		currentHighlighted := index < len(runes) && positionSet[index]
		if currentHighlighted != isHighlighted || index == len(runes) {
			chunk := string(runes[runStart:index])
			if isHighlighted {
				result.WriteString(highlightStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			isHighlighted = currentHighlighted
		}
	}
	return result.String()
}
