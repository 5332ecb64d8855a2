package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// colorizeJSON pretty-prints raw with two-space indentation, keeping key
// order and number literals from the source.
func colorizeJSON(raw string, st JSONStyles) (string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var b strings.Builder
	if err := renderJSON(&b, dec, st, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderJSON(b *strings.Builder, dec *json.Decoder, st JSONStyles, indent int) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return renderContainer(b, dec, st, indent, "{", "}", true)
		case '[':
			return renderContainer(b, dec, st, indent, "[", "]", false)
		}
		return fmt.Errorf("unexpected %q", t)
	case string:
		b.WriteString(st.String.Render(quote(t)))
	case json.Number:
		b.WriteString(st.Number.Render(t.String()))
	case bool:
		b.WriteString(st.Bool.Render(fmt.Sprint(t)))
	case nil:
		b.WriteString(st.Null.Render("null"))
	default:
		b.WriteString(fmt.Sprint(t))
	}
	return nil
}

func renderContainer(b *strings.Builder, dec *json.Decoder, st JSONStyles, indent int, openTok, closeTok string, object bool) error {
	ind := strings.Repeat("  ", indent)
	b.WriteString(st.Punct.Render(openTok))
	n := 0
	for dec.More() {
		if n > 0 {
			b.WriteString(st.Punct.Render(","))
		}
		b.WriteString("\n")
		b.WriteString(ind)
		b.WriteString("  ")
		if object {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			k, _ := tok.(string)
			b.WriteString(st.Key.Render(quote(k)))
			b.WriteString(st.Punct.Render(": "))
		}
		if err := renderJSON(b, dec, st, indent+1); err != nil {
			return err
		}
		n++
	}
	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return err
	}
	if n > 0 {
		b.WriteString("\n")
		b.WriteString(ind)
	}
	b.WriteString(st.Punct.Render(closeTok))
	return nil
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `"` + s + `"`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
