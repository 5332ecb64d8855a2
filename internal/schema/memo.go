package schema

import (
	"jlv/internal/model"
	"jlv/internal/util/logx"
)

// Memo builds the schema of a source on first use and hands out the same
// instance afterwards.
type Memo struct {
	src    model.RecordSource
	schema *Schema
	builds int
}

func NewMemo(src model.RecordSource) *Memo { return &Memo{src: src} }

func (m *Memo) Get() *Schema {
	if m.schema == nil {
		m.schema = Build(m.src.Records())
		m.builds++
		logx.Debugf("schema built for %s: %d columns over %d records", m.src.Title(), m.schema.Len(), m.src.Len())
	}
	return m.schema
}

// Invalidate forces the next Get to rebuild. Sources are immutable for a
// session, so the viewer itself never calls this.
func (m *Memo) Invalidate() { m.schema = nil }

// Builds reports how many times the schema has been computed.
func (m *Memo) Builds() int { return m.builds }
