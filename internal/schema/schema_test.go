package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlv/internal/model"
)

func records(lines ...string) []*model.Record {
	out := make([]*model.Record, len(lines))
	for i, l := range lines {
		out[i] = model.NewRecord(i, l)
	}
	return out
}

func TestBuildFirstSeenOrder(t *testing.T) {
	recs := records(`{"a":1,"b":2}`, `{"b":3,"c":4}`)
	s := Build(recs)

	assert.Equal(t, []string{"a", "b", "c"}, s.Headers())
	assert.Equal(t, []int{1, 1, 1}, s.Widths())
	assert.Equal(t, []string{"1", "2", ""}, s.Row(recs[0]))
	assert.Equal(t, []string{"", "3", "4"}, s.Row(recs[1]))

	for i, c := range s.OrderedColumns() {
		assert.Equal(t, i, c.Index)
	}
}

func TestRowForUnparsedRecord(t *testing.T) {
	recs := records(`{"a":1,"b":2}`, `{"b":3,"c":4}`, `this is not json`)
	s := Build(recs)
	assert.Equal(t, []string{"", "", ""}, s.Row(recs[2]))
	assert.Equal(t, []string{"", "", ""}, s.Row(model.NewRecord(9, `[1,2]`)))
	assert.Equal(t, []string{"", "", ""}, s.Row(nil))
}

func TestRowFollowsSchemaOrderNotRecordOrder(t *testing.T) {
	recs := records(`{"a":1,"b":2,"c":3}`, `{"c":"x","a":"y"}`)
	s := Build(recs)
	assert.Equal(t, []string{`"y"`, "", `"x"`}, s.Row(recs[1]))
	for _, r := range recs {
		assert.Len(t, s.Row(r), s.Len())
	}
}

func TestWidths(t *testing.T) {
	recs := records(
		`{"id":1,"message":"hi"}`,
		`{"id":123456,"message":"a much longer message"}`,
		`{"id":7}`,
	)
	s := Build(recs)
	id, ok := s.Column("id")
	require.True(t, ok)
	assert.Equal(t, 6, id.MinWidth)

	msg, ok := s.Column("message")
	require.True(t, ok)
	assert.Equal(t, len(`"a much longer message"`), msg.MinWidth)
}

func TestWidthsNeverShrink(t *testing.T) {
	lines := []string{`{"k":"long value"}`, `{"k":1}`, `{"other":true}`, `{"k":null}`}
	prev := 0
	for n := 1; n <= len(lines); n++ {
		s := Build(records(lines[:n]...))
		c, ok := s.Column("k")
		require.True(t, ok)
		assert.GreaterOrEqual(t, c.MinWidth, prev)
		assert.GreaterOrEqual(t, c.MinWidth, len(c.Key))
		prev = c.MinWidth
	}
}

func TestKeyWiderThanValues(t *testing.T) {
	s := Build(records(`{"very_long_key":1}`))
	assert.Equal(t, []int{len("very_long_key")}, s.Widths())
}

func TestWideRunes(t *testing.T) {
	s := Build(records(`{"k":"日本"}`))
	assert.Equal(t, []int{6}, s.Widths(), "two wide runes plus two quotes")
}

func TestNoObjects(t *testing.T) {
	recs := records(`1`, `"str"`, `garbage`, `[]`)
	s := Build(recs)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Headers())
	for _, r := range recs {
		assert.Empty(t, s.Row(r))
	}
}

func TestRenderCompact(t *testing.T) {
	r := model.NewRecord(0, `{"arr": [1, 2, 3], "obj": {"x" : "y"}, "n": 1.50, "s": "a\"b"}`)
	s := Build([]*model.Record{r})
	assert.Equal(t, []string{`[1,2,3]`, `{"x":"y"}`, `1.50`, `"a\"b"`}, s.Row(r))
}

func TestMemoBuildsOnce(t *testing.T) {
	src := model.NewFileSource("x.jsonl", []string{`{"a":1}`, `{"b":2}`})
	m := NewMemo(src)
	assert.Equal(t, 0, m.Builds())

	first := m.Get()
	second := m.Get()
	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Builds())
	assert.Equal(t, first.Headers(), second.Headers())
	assert.Equal(t, first.Widths(), second.Widths())

	m.Invalidate()
	third := m.Get()
	assert.NotSame(t, first, third)
	assert.Equal(t, first.Headers(), third.Headers())
	assert.Equal(t, 2, m.Builds())
}
