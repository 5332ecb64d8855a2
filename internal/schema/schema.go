// Package schema derives a table layout from a set of records: which
// top-level keys become columns, in what order, and how wide each must be.
package schema

import (
	"bytes"
	"encoding/json"

	"github.com/mattn/go-runewidth"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"jlv/internal/model"
)

// Column is one observed top-level key.
type Column struct {
	Key string
	// Index is assigned the first time Key is seen scanning records in
	// source order and never changes afterwards.
	Index int
	// MinWidth is the widest rendered value or the key itself, whichever
	// is larger. It only grows.
	MinWidth int
}

func (c *Column) observe(cell string) {
	if w := runewidth.StringWidth(cell); w > c.MinWidth {
		c.MinWidth = w
	}
}

// Schema is immutable once built. Every accessor reads the same cached
// ordered slice so header, widths and row cells stay aligned.
type Schema struct {
	columns *orderedmap.OrderedMap[string, *Column]
	ordered []*Column
}

// Build scans records in order. Only object values contribute columns.
func Build(records []*model.Record) *Schema {
	cols := orderedmap.New[string, *Column]()
	for _, r := range records {
		for _, f := range r.Fields() {
			c, ok := cols.Get(f.Key)
			if !ok {
				c = &Column{Key: f.Key, Index: cols.Len()}
				c.observe(f.Key)
				cols.Set(f.Key, c)
			}
			c.observe(Render(f.Value))
		}
	}
	ordered := make([]*Column, 0, cols.Len())
	for p := cols.Oldest(); p != nil; p = p.Next() {
		ordered = append(ordered, p.Value)
	}
	return &Schema{columns: cols, ordered: ordered}
}

// Render is the cell form of a value: compact JSON, so strings keep their
// quotes and numbers keep their source text.
func Render(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var b bytes.Buffer
	if err := json.Compact(&b, v); err != nil {
		return string(v)
	}
	return b.String()
}

func (s *Schema) Len() int { return len(s.ordered) }

// OrderedColumns returns the columns sorted by Index. Callers must not
// modify the returned slice.
func (s *Schema) OrderedColumns() []*Column { return s.ordered }

func (s *Schema) Column(key string) (*Column, bool) { return s.columns.Get(key) }

func (s *Schema) Headers() []string {
	out := make([]string, len(s.ordered))
	for i, c := range s.ordered {
		out[i] = c.Key
	}
	return out
}

func (s *Schema) Widths() []int {
	out := make([]int, len(s.ordered))
	for i, c := range s.ordered {
		out[i] = c.MinWidth
	}
	return out
}

// Row materializes r against the schema: exactly Len() cells in column
// order, empty where r lacks the key or is not an object at all.
func (s *Schema) Row(r *model.Record) []string {
	cells := make([]string, len(s.ordered))
	if r == nil || !r.IsObject() {
		return cells
	}
	for i, c := range s.ordered {
		if v, ok := r.Field(c.Key); ok {
			cells[i] = Render(v)
		}
	}
	return cells
}
