package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jlv/internal/util/logx"
)

// Focus is the active view of a Mux: the table (zero value) or one detail
// tab. Only the Mux constructs tab foci, and it always clamps the index to
// the open tabs first.
type Focus struct {
	tab    int
	detail bool
}

// DetailTab returns the tab index, or false when the table is active.
func (f Focus) DetailTab() (int, bool) { return f.tab, f.detail }

// Index is the signed form: -1 for the table, otherwise the tab index.
func (f Focus) Index() int {
	if !f.detail {
		return -1
	}
	return f.tab
}

func (f Focus) IsTable() bool { return !f.detail }

// Mux multiplexes one TableView and any number of DetailView tabs.
type Mux struct {
	table  *TableView
	tabs   []*DetailView
	focus  Focus
	keymap KeyMap
	styles Styles
	help   help.Model
	width  int
	height int
}

func NewMux(table *TableView, km KeyMap, st Styles) *Mux {
	h := help.New()
	h.Styles.ShortKey = st.Help.Bold(true)
	h.Styles.ShortDesc = st.Help
	h.Styles.ShortSeparator = st.Help
	return &Mux{table: table, keymap: km, styles: st, help: h, width: 80, height: 24}
}

func (m *Mux) Table() *TableView   { return m.table }
func (m *Mux) Tabs() []*DetailView { return m.tabs }
func (m *Mux) Focus() Focus        { return m.focus }

// Active returns the focused detail tab, or nil when the table is active.
func (m *Mux) Active() *DetailView {
	if i, ok := m.focus.DetailTab(); ok {
		return m.tabs[i]
	}
	return nil
}

// Capturing reports whether the active view wants every keystroke.
func (m *Mux) Capturing() bool { return m.focus.IsTable() && m.table.Capturing() }

func (m *Mux) setFocus(i int) {
	i = clamp(i, -1, len(m.tabs)-1)
	if i < 0 {
		m.focus = Focus{}
		return
	}
	m.focus = Focus{tab: i, detail: true}
}

// Open adds a tab for the table's selected record and focuses it.
func (m *Mux) Open() {
	rec := m.table.SelectedRecord()
	if rec == nil {
		return
	}
	d := NewDetailView(rec, m.styles)
	d.SetSize(m.width, m.contentHeight())
	m.tabs = append(m.tabs, d)
	m.setFocus(len(m.tabs) - 1)
	logx.Debugf("opened tab for line %d (%d open)", rec.SeqNo+1, len(m.tabs))
}

// CloseActive removes the focused tab and moves focus one step toward the
// table. It does nothing while the table is active.
func (m *Mux) CloseActive() {
	i, ok := m.focus.DetailTab()
	if !ok || len(m.tabs) == 0 {
		return
	}
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	m.setFocus(i - 1)
}

func (m *Mux) NextTab() { m.setFocus(m.focus.Index() + 1) }
func (m *Mux) PrevTab() { m.setFocus(m.focus.Index() - 1) }
func (m *Mux) Home()    { m.setFocus(-1) }

func (m *Mux) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if m.Capturing() {
		return m.table.Update(msg)
	}
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		if m.focus.IsTable() {
			m.Open()
		} else {
			m.CloseActive()
		}
	case key.Matches(msg, m.keymap.NextTab):
		m.NextTab()
	case key.Matches(msg, m.keymap.PrevTab):
		m.PrevTab()
	case key.Matches(msg, m.keymap.Home):
		m.Home()
	default:
		if d := m.Active(); d != nil {
			return d.Update(msg)
		}
		return m.table.Update(msg)
	}
	return nil
}

func (m *Mux) SetSize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.table.SetSize(w, m.contentHeight())
	for _, d := range m.tabs {
		d.SetSize(w, m.contentHeight())
	}
}

// contentHeight leaves the bottom line for the tab strip.
func (m *Mux) contentHeight() int { return max(1, m.height-1) }

func (m *Mux) View() string {
	var body string
	if d := m.Active(); d != nil {
		body = d.View()
	} else {
		body = m.table.View()
	}
	body = lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.tabStrip())
}

// tabStrip shows "Table", one label per open tab and the key hints. The
// active entry sits at display index Focus.Index()+1.
func (m *Mux) tabStrip() string {
	labels := make([]string, 0, len(m.tabs)+1)
	labels = append(labels, "Table")
	for _, d := range m.tabs {
		labels = append(labels, d.Title())
	}
	active := m.focus.Index() + 1
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = m.styles.TabActive.Render(l)
		} else {
			parts[i] = m.styles.TabInactive.Render(l)
		}
	}
	tabs := strings.Join(parts, m.styles.TabDivider.Render("·"))
	hints := m.help.ShortHelpView(m.keymap.ShortHelp())
	gap := m.width - lipgloss.Width(tabs) - lipgloss.Width(hints)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(tabs + " " + hints)
	}
	return tabs + strings.Repeat(" ", gap) + hints
}
