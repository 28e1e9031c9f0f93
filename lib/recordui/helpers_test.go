// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/schema/record"
)

// fakeAPI is an in-memory recordapi.API that records every call.
type fakeAPI struct {
	mu      sync.Mutex
	records []record.Record

	listErr   error
	getErr    error
	updateErr error

	listCalls int
	getCalls  []string
	updates   []record.Record
}

var _ recordapi.API = (*fakeAPI)(nil)

func (api *fakeAPI) ListRecords(ctx context.Context) ([]record.Record, error) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.listCalls++
	if api.listErr != nil {
		return nil, api.listErr
	}
	return slices.Clone(api.records), nil
}

func (api *fakeAPI) GetRecord(ctx context.Context, id string) (record.Record, error) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.getCalls = append(api.getCalls, id)
	if api.getErr != nil {
		return record.Record{}, api.getErr
	}
	for _, entry := range api.records {
		if entry.ID == id {
			return entry, nil
		}
	}
	return record.Record{}, recordapi.ErrNotFound
}

func (api *fakeAPI) UpdateRecord(ctx context.Context, updated record.Record) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.updates = append(api.updates, updated)
	if api.updateErr != nil {
		return api.updateErr
	}
	for index, entry := range api.records {
		if entry.ID == updated.ID {
			api.records[index] = updated
			return nil
		}
	}
	return recordapi.ErrNotFound
}

func sampleRecords() []record.Record {
	return []record.Record{
		{ID: "1", Name: "Acme", Number: "A-1", Date: record.NewDate(2024, time.January, 5)},
		{ID: "2", Name: "Globex", Number: "G-7", Date: record.NewDate(2023, time.March, 14)},
		{ID: "3", Name: "Initech", Number: "I-42", Date: record.NewDate(2022, time.December, 31)},
	}
}

// newTestApp builds an App over a fakeAPI holding records, sizes it,
// and runs Init to completion.
func newTestApp(t *testing.T, records ...record.Record) (*App, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{records: records}
	app := NewApp(api, Config{})
	t.Cleanup(app.Dispose)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	drive(t, app, app.Init())
	return app, api
}

// drive runs cmd and every command that follows from it, delivering
// each resulting message to app.Update. It reports whether tea.Quit
// was among them.
func drive(t *testing.T, app *App, cmd tea.Cmd) bool {
	t.Helper()
	quit := false
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 1000 {
			t.Fatal("commands did not settle after 1000 steps")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch message := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, message...)
		case tea.QuitMsg:
			quit = true
		default:
			_, follow := app.Update(message)
			queue = append(queue, follow)
		}
	}
	return quit
}

// collect runs cmd and its batched children without an App, returning
// the leaf messages.
func collect(cmd tea.Cmd) []tea.Msg {
	var messages []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch message := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, message...)
		default:
			messages = append(messages, message)
		}
	}
	return messages
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+right":
		return tea.KeyMsg{Type: tea.KeyCtrlRight}
	case "ctrl+left":
		return tea.KeyMsg{Type: tea.KeyCtrlLeft}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// press sends each named key to app in order and runs the resulting
// commands. It reports whether any key quit.
func press(t *testing.T, app *App, names ...string) bool {
	t.Helper()
	quit := false
	for _, name := range names {
		_, cmd := app.Update(keyMsg(name))
		if drive(t, app, cmd) {
			quit = true
		}
	}
	return quit
}

// typeText sends text one rune at a time.
func typeText(t *testing.T, app *App, text string) {
	t.Helper()
	for _, r := range text {
		_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		drive(t, app, cmd)
	}
}

func click(t *testing.T, app *App, x, y int) {
	t.Helper()
	_, cmd := app.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	drive(t, app, cmd)
}

// visiblePanes counts the module panes currently shown.
func visiblePanes(app *App) int {
	count := 0
	for _, pane := range []*Pane{app.List().Element(), app.Detail().Element(), app.Edit().Element()} {
		if pane.Visible() {
			count++
		}
	}
	return count
}
