package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jlv/internal/filter"
	"jlv/internal/model"
	"jlv/internal/schema"
)

// TableView renders a RecordSource one row per record, one column per
// schema column, and owns the row cursor.
type TableView struct {
	src    model.RecordSource
	memo   *schema.Memo
	keymap KeyMap
	styles Styles

	tbl       table.Model
	rows      [][]string // full schema-aligned rows, built once
	selected  int
	colOffset int
	width     int
	height    int

	// search
	input   textinput.Model
	editing bool
	eval    *filter.Evaluator
	query   string
	lastMsg string
}

// NewTableView places the cursor on initial, clamped to the source.
func NewTableView(src model.RecordSource, memo *schema.Memo, km KeyMap, st Styles, initial int) *TableView {
	t := &TableView{src: src, memo: memo, keymap: km, styles: st, width: 80, height: 20}

	t.tbl = table.New(table.WithFocused(true), table.WithHeight(t.height))
	ts := table.DefaultStyles()
	ts.Header = st.TableStyles.Header
	ts.Cell = st.TableStyles.Cell
	ts.Selected = st.TableStyles.Selected
	t.tbl.SetStyles(ts)

	t.input = textinput.New()
	t.input.Prompt = "/"
	t.input.Placeholder = "text, /regex/ or =expression"
	t.input.CharLimit = 256

	sch := memo.Get()
	t.rows = make([][]string, src.Len())
	for i, r := range src.Records() {
		t.rows[i] = sch.Row(r)
	}
	t.applyWindow()
	t.moveTo(initial)
	return t
}

func (t *TableView) Schema() *schema.Schema { return t.memo.Get() }

// Selected is the cursor position, a valid index unless the source is empty.
func (t *TableView) Selected() int { return t.selected }

// SelectedRecord returns the record under the cursor, or nil for an empty
// source. The record is shared, not copied.
func (t *TableView) SelectedRecord() *model.Record { return t.src.At(t.selected) }

func (t *TableView) MoveDown() { t.moveTo(t.selected + 1) }
func (t *TableView) MoveUp()   { t.moveTo(t.selected - 1) }
func (t *TableView) PageDown() { t.moveTo(t.selected + t.pageSize()) }
func (t *TableView) PageUp()   { t.moveTo(t.selected - t.pageSize()) }
func (t *TableView) Top()      { t.moveTo(0) }
func (t *TableView) Bottom()   { t.moveTo(t.src.Len() - 1) }

func (t *TableView) ColumnOffset() int { return t.colOffset }

func (t *TableView) moveTo(i int) {
	i = clamp(i, 0, max(0, t.src.Len()-1))
	switch d := i - t.selected; {
	case d > 0:
		t.tbl.MoveDown(d)
	case d < 0:
		t.tbl.MoveUp(-d)
	}
	t.selected = i
}

func (t *TableView) pageSize() int { return max(1, t.height-2) }

// ScrollRight shifts the first visible column. Header, widths and cells are
// sliced by the same window, so rows stay aligned with the header.
func (t *TableView) ScrollRight() { t.scrollTo(t.colOffset + 1) }
func (t *TableView) ScrollLeft()  { t.scrollTo(t.colOffset - 1) }

func (t *TableView) scrollTo(off int) {
	off = clamp(off, 0, max(0, t.Schema().Len()-1))
	if off == t.colOffset {
		return
	}
	t.colOffset = off
	t.applyWindow()
}

func (t *TableView) applyWindow() {
	cols := t.Schema().OrderedColumns()[t.colOffset:]
	tc := make([]table.Column, len(cols))
	for i, c := range cols {
		tc[i] = table.Column{Title: c.Key, Width: c.MinWidth}
	}
	rows := make([]table.Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = table.Row(r[t.colOffset:])
	}
	// the table renders every row against its current columns, so never
	// let rows be wider than the columns in between the two calls
	if len(tc) < len(t.tbl.Columns()) {
		t.tbl.SetRows(rows)
		t.tbl.SetColumns(tc)
	} else {
		t.tbl.SetColumns(tc)
		t.tbl.SetRows(rows)
	}
}

func (t *TableView) SetSize(w, h int) {
	t.width, t.height = w, max(2, h-1) // last line is the status bar
	t.tbl.SetWidth(w)
	t.tbl.SetHeight(t.height)
	t.input.Width = max(10, w-len(t.input.Prompt)-1)
}

// Capturing reports whether keystrokes belong to the search input.
func (t *TableView) Capturing() bool { return t.editing }

func (t *TableView) Update(msg tea.KeyMsg) tea.Cmd {
	if t.editing {
		switch {
		case key.Matches(msg, t.keymap.Apply):
			t.editing = false
			t.input.Blur()
			t.applySearch(t.input.Value())
			return nil
		case key.Matches(msg, t.keymap.Cancel):
			t.editing = false
			t.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd
	}
	switch {
	case key.Matches(msg, t.keymap.Down):
		t.MoveDown()
	case key.Matches(msg, t.keymap.Up):
		t.MoveUp()
	case key.Matches(msg, t.keymap.PageDown):
		t.PageDown()
	case key.Matches(msg, t.keymap.PageUp):
		t.PageUp()
	case key.Matches(msg, t.keymap.Top):
		t.Top()
	case key.Matches(msg, t.keymap.Bottom):
		t.Bottom()
	case key.Matches(msg, t.keymap.Right):
		t.ScrollRight()
	case key.Matches(msg, t.keymap.Left):
		t.ScrollLeft()
	case key.Matches(msg, t.keymap.Search):
		t.editing = true
		t.input.SetValue(t.query)
		t.input.CursorEnd()
		return t.input.Focus()
	case key.Matches(msg, t.keymap.SearchNext):
		t.SearchNext()
	case key.Matches(msg, t.keymap.SearchPrev):
		t.SearchPrev()
	}
	return nil
}

// applySearch compiles q and jumps to the first match after the cursor.
// An empty query clears the search.
func (t *TableView) applySearch(q string) {
	c := filter.ParseQuery(q)
	if c.Empty() {
		t.eval, t.query, t.lastMsg = nil, "", ""
		return
	}
	ev, err := filter.NewEvaluator(c)
	if err != nil {
		t.lastMsg = "bad query: " + err.Error()
		return
	}
	t.eval, t.query = ev, q
	t.SearchNext()
}

func (t *TableView) SearchNext() bool { return t.searchFrom(1) }
func (t *TableView) SearchPrev() bool { return t.searchFrom(-1) }

// searchFrom walks the records in direction dir starting after the cursor,
// wrapping once around the source.
func (t *TableView) searchFrom(dir int) bool {
	n := t.src.Len()
	if t.eval == nil || n == 0 {
		return false
	}
	for step := 1; step <= n; step++ {
		i := ((t.selected+dir*step)%n + n) % n
		if t.eval.Match(t.src.At(i)) {
			t.moveTo(i)
			t.lastMsg = ""
			return true
		}
	}
	t.lastMsg = "no match: " + t.query
	return false
}

func (t *TableView) View() string {
	var bottom string
	switch {
	case t.editing:
		bottom = t.input.View()
	default:
		sch := t.Schema()
		pos := 0
		if t.src.Len() > 0 {
			pos = t.selected + 1
		}
		bottom = fmt.Sprintf("row %d/%d", pos, t.src.Len())
		switch {
		case sch.Len() == 0:
			bottom += " | no JSON objects to tabulate"
		default:
			bottom += fmt.Sprintf(" | col %d/%d", t.colOffset+1, sch.Len())
		}
		if t.query != "" {
			bottom += " | search: " + t.query
		}
		if t.lastMsg != "" {
			bottom += " | " + t.lastMsg
		}
		bottom = t.styles.Status.Render(bottom)
	}
	body := lipgloss.NewStyle().MaxWidth(t.width).Render(t.tbl.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, bottom)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
