package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"jlv/internal/model"
	"jlv/internal/schema"
)

func newSource(lines ...string) *model.FileSource {
	return model.NewFileSource("test.jsonl", lines)
}

func newTable(src model.RecordSource) *TableView {
	return NewTableView(src, schema.NewMemo(src), DefaultKeyMap(), NewStyles(true), 0)
}

func newMux(lines ...string) *Mux {
	m := NewMux(newTable(newSource(lines...)), DefaultKeyMap(), NewStyles(true))
	m.SetSize(100, 30)
	return m
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyHome     = tea.KeyMsg{Type: tea.KeyHome}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
