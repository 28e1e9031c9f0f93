// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/tui"
)

// Tab indexes, in tab bar order.
const (
	TabList = iota
	TabDetail
	TabEdit
)

// SavedMessage is the text of the acknowledgment shown after a
// successful save.
const SavedMessage = "Record saved"

// module is the surface the App needs from each tab's module.
type module interface {
	tui.Disposable
	Element() *Pane
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	CapturingText() bool
	Help() string
}

// chromeHeight is the tab bar line, the separator, and the help line.
const chromeHeight = 3

// App is the top-level bubbletea model: a tab bar over the list,
// detail, and edit modules, exactly one of which is visible.
type App struct {
	config Config

	tabs   *tui.TabBar
	list   *ListModule
	detail *DetailModule
	edit   *EditModule

	modules   [3]module
	activeTab int
	alert     *tui.Alert

	width  int
	height int

	subscriptions tui.Subscriptions
}

// NewApp builds the tab bar and all three modules, and wires the
// detail and edit modules to the list's selections. The list tab is
// active.
func NewApp(api recordapi.API, config Config) *App {
	config = config.withDefaults()
	app := &App{
		config: config,
		tabs:   tui.NewTabBar(config.Theme, "List", "Detail", "Edit"),
	}
	app.list = NewListModule(api, config)
	app.detail = NewDetailModule(api, app.list.Selections(), config)
	app.edit = NewEditModule(api, app.list.Selections(), config)
	app.modules = [3]module{app.list, app.detail, app.edit}

	app.subscriptions.Add(app.tabs.Selections().Subscribe(app.showTab))
	app.subscriptions.Add(app.edit.Saved().Subscribe(app.acknowledgeSave))
	app.showTab(TabList)
	return app
}

// List returns the list module.
func (app *App) List() *ListModule { return app.list }

// Detail returns the detail module.
func (app *App) Detail() *DetailModule { return app.detail }

// Edit returns the edit module.
func (app *App) Edit() *EditModule { return app.edit }

// Tabs returns the tab bar.
func (app *App) Tabs() *tui.TabBar { return app.tabs }

// ActiveTab returns the index of the visible tab.
func (app *App) ActiveTab() int { return app.activeTab }

// Alert returns the open acknowledgment, or nil.
func (app *App) Alert() *tui.Alert { return app.alert }

// showTab makes module index the only visible pane. Indexes outside
// the three tabs change nothing.
func (app *App) showTab(index int) tea.Cmd {
	if index < 0 || index >= len(app.modules) {
		return nil
	}
	app.activeTab = index
	for position, entry := range app.modules {
		if position == index {
			entry.Element().Show()
		} else {
			entry.Element().Hide()
		}
	}
	if index == TabEdit {
		return app.edit.Focus()
	}
	app.edit.Blur()
	return nil
}

func (app *App) acknowledgeSave(record.Record) tea.Cmd {
	app.alert = tui.NewAlert(SavedMessage, app.config.Theme)
	return nil
}

// Dispose releases the tab bar, every module, and the App's own
// subscriptions. The model keeps rendering its last state.
func (app *App) Dispose() {
	app.subscriptions.Dispose()
	app.tabs.Dispose()
	for _, entry := range app.modules {
		entry.Dispose()
	}
}

// Init starts loading the record list.
func (app *App) Init() tea.Cmd {
	return app.list.Init()
}

// Update implements tea.Model.
func (app *App) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		app.width = message.Width
		app.height = message.Height
		contentHeight := max(message.Height-chromeHeight, 0)
		for _, entry := range app.modules {
			entry.SetSize(message.Width, contentHeight)
		}
		return app, nil

	case tea.KeyMsg:
		return app, app.handleKey(message)

	case tea.MouseMsg:
		return app, app.handleMouse(message)
	}

	var cmds []tea.Cmd
	for _, entry := range app.modules {
		cmds = append(cmds, entry.Update(message))
	}
	return app, tea.Batch(cmds...)
}

func (app *App) handleKey(message tea.KeyMsg) tea.Cmd {
	keys := app.config.Keys
	if key.Matches(message, keys.ForceQuit) {
		return tea.Quit
	}

	if app.alert != nil {
		if app.alert.Dismissed(message) {
			app.alert = nil
		}
		return nil
	}

	switch {
	case key.Matches(message, keys.TabList):
		return app.tabs.Select(TabList)
	case key.Matches(message, keys.TabDetail):
		return app.tabs.Select(TabDetail)
	case key.Matches(message, keys.TabEdit):
		return app.tabs.Select(TabEdit)
	case key.Matches(message, keys.TabNext):
		return app.tabs.Next()
	case key.Matches(message, keys.TabPrevious):
		return app.tabs.Previous()
	}

	active := app.modules[app.activeTab]
	if !active.CapturingText() {
		switch {
		case key.Matches(message, keys.Quit):
			return tea.Quit
		case key.Matches(message, keys.TabListDigit):
			return app.tabs.Select(TabList)
		case key.Matches(message, keys.TabDetailDigit):
			return app.tabs.Select(TabDetail)
		case key.Matches(message, keys.TabEditDigit):
			return app.tabs.Select(TabEdit)
		}
	}
	return active.Update(message)
}

// handleMouse routes clicks on the first line to the tab bar and
// everything below it to the active module, with Y made relative to
// the pane.
func (app *App) handleMouse(message tea.MouseMsg) tea.Cmd {
	if app.alert != nil {
		return nil
	}
	if message.Y == 0 {
		if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
			return nil
		}
		if index := app.tabs.HitTest(message.X); index >= 0 {
			return app.tabs.Select(index)
		}
		return nil
	}
	message.Y--
	return app.modules[app.activeTab].Update(message)
}

// View implements tea.Model.
func (app *App) View() string {
	if app.width == 0 || app.height == 0 {
		return ""
	}
	theme := app.config.Theme

	var sections []string
	sections = append(sections, app.tabs.View(app.width))
	for _, entry := range app.modules {
		if entry.Element().Visible() {
			sections = append(sections, entry.View())
		}
	}

	separator := lipgloss.NewStyle().Foreground(theme.BorderColor).
		Render(strings.Repeat("─", app.width))
	help := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render(truncateString(app.modules[app.activeTab].Help()+"  q quit", app.width))
	sections = append(sections, separator, tui.PadRight(help, app.width))

	view := strings.Join(sections, "\n")
	if app.alert != nil {
		view = app.alert.Overlay(view, app.width, app.height)
	}
	return view
}
