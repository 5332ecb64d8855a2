package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jlv/internal/model"
)

// DetailView shows a single record as indented JSON. Its only state is the
// scroll position of the viewport.
type DetailView struct {
	rec     *model.Record
	styles  Styles
	content string
	vp      viewport.Model
}

func NewDetailView(rec *model.Record, st Styles) *DetailView {
	d := &DetailView{rec: rec, styles: st, vp: viewport.New(80, 20)}
	d.content = d.render()
	d.vp.SetContent(d.content)
	return d
}

func (d *DetailView) render() string {
	if d.rec == nil || !d.rec.HasValue() {
		out := d.styles.JSON.Null.Render("null")
		if d.rec != nil && d.rec.Raw != "" {
			out += "\n\n" + d.styles.Status.Render("line is not valid JSON:") + "\n" + d.rec.Raw
		}
		return out
	}
	s, err := colorizeJSON(d.rec.Raw, d.styles.JSON)
	if err != nil {
		return d.rec.PrettyJSON()
	}
	return s
}

func (d *DetailView) Record() *model.Record { return d.rec }

// Title is the tab label: the record's line number in the file.
func (d *DetailView) Title() string {
	if d.rec == nil {
		return "?"
	}
	return fmt.Sprintf("line %d", d.rec.SeqNo+1)
}

// Content is the rendered text before viewport clipping.
func (d *DetailView) Content() string { return d.content }

func (d *DetailView) SetSize(w, h int) {
	d.vp.Width, d.vp.Height = w, max(1, h)
}

// Update scrolls the viewport; every other key is ignored.
func (d *DetailView) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return cmd
}

func (d *DetailView) View() string { return d.vp.View() }
