package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jlv/internal/config"
	"jlv/internal/model"
	"jlv/internal/schema"
)

// App is the bubbletea model: a bordered frame titled with the source,
// with the Mux drawn inside it.
type App struct {
	src    model.RecordSource
	mux    *Mux
	keymap KeyMap
	styles Styles
	width  int
	height int
}

func NewApp(src model.RecordSource, cfg *config.Config) *App {
	st := NewStyles(cfg == nil || cfg.Theme != config.ThemeLight)
	km := DefaultKeyMap()
	tv := NewTableView(src, schema.NewMemo(src), km, st, 0)
	a := &App{src: src, mux: NewMux(tv, km, st), keymap: km, styles: st}
	a.resize(80, 24)
	return a
}

func Run(ctx context.Context, src model.RecordSource, cfg *config.Config) error {
	p := tea.NewProgram(NewApp(src, cfg), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Mux() *Mux { return a.mux }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if !a.mux.Capturing() && key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, a.mux.HandleKey(msg)
	}
	return a, nil
}

// resize hands the Mux what is left inside the border and title line.
func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	fw := a.styles.Border.GetHorizontalFrameSize()
	fh := a.styles.Border.GetVerticalFrameSize()
	a.mux.SetSize(max(1, w-fw), max(2, h-fh-1))
}

func (a *App) View() string {
	inner := a.width - a.styles.Border.GetHorizontalFrameSize()
	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, a.styles.Title.Render(fmt.Sprintf(" jlv - %s ", a.src.Title())))
	return a.styles.Border.Render(lipgloss.JoinVertical(lipgloss.Left, title, a.mux.View()))
}
