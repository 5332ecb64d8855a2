package model

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one line of input. It is built once at load time and never
// mutated afterwards, so views share *Record values freely.
type Record struct {
	SeqNo int    `json:"seq"`
	Raw   string `json:"raw"`

	value  any
	parsed bool
	// fields is non-nil iff value is a JSON object; it keeps the
	// object's top-level keys in document order.
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Field is a top-level key of an object record with its compact source value.
type Field struct {
	Key   string
	Value json.RawMessage
}

// NewRecord parses raw as JSON. A line that is not valid JSON still yields
// a Record, just one without a value.
func NewRecord(seq int, raw string) *Record {
	r := &Record{SeqNo: seq, Raw: raw}
	data := []byte(raw)
	if !json.Valid(data) {
		return r
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return r
	}
	r.value = v
	r.parsed = true
	if _, ok := v.(map[string]any); ok {
		om := orderedmap.New[string, json.RawMessage]()
		if err := om.UnmarshalJSON(data); err == nil {
			r.fields = om
		}
	}
	return r
}

// Value returns the decoded value. Numbers are json.Number.
func (r *Record) Value() (any, bool) { return r.value, r.parsed }

// HasValue reports whether Raw was valid JSON. A literal null counts.
func (r *Record) HasValue() bool { return r.parsed }

func (r *Record) IsObject() bool { return r.fields != nil }

// Field looks up a top-level key of an object record.
func (r *Record) Field(key string) (json.RawMessage, bool) {
	if r.fields == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// Fields returns the top-level fields in document order, or nil when the
// record is not an object. Duplicate keys keep their first position and
// their last value.
func (r *Record) Fields() []Field {
	if r.fields == nil {
		return nil
	}
	out := make([]Field, 0, r.fields.Len())
	for p := r.fields.Oldest(); p != nil; p = p.Next() {
		out = append(out, Field{Key: p.Key, Value: p.Value})
	}
	return out
}

// PrettyJSON indents the source text, keeping key order and number
// literals as written. Records without a value render as null.
func (r *Record) PrettyJSON() string {
	if !r.parsed {
		return "null"
	}
	var b bytes.Buffer
	if err := json.Indent(&b, []byte(r.Raw), "", "  "); err != nil {
		return r.Raw
	}
	return string(bytes.TrimSpace(b.Bytes()))
}
