package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"jlv/internal/config"
	"jlv/internal/model"
	"jlv/internal/schema"
)

// ToCSV writes the table as the viewer shows it: one header row of column
// keys, then one schema-aligned row per record.
func ToCSV(w io.Writer, s *schema.Schema, records []*model.Record) error {
	if len(records) == 0 {
		return errors.New("no records")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"line"}, s.Headers()...)); err != nil {
		return err
	}
	for _, r := range records {
		row := append([]string{fmt.Sprint(r.SeqNo + 1)}, s.Row(r)...)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToNDJSON writes each parsed record compacted onto one line and skips
// lines that were not valid JSON. It returns how many were skipped.
func ToNDJSON(w io.Writer, records []*model.Record) (int, error) {
	bw := bufio.NewWriter(w)
	skipped := 0
	for _, r := range records {
		if !r.HasValue() {
			skipped++
			continue
		}
		var b bytes.Buffer
		if err := json.Compact(&b, []byte(r.Raw)); err != nil {
			skipped++
			continue
		}
		b.WriteByte('\n')
		if _, err := bw.Write(b.Bytes()); err != nil {
			return skipped, err
		}
	}
	return skipped, bw.Flush()
}

// WriteFile exports src to path in the given format.
func WriteFile(path string, format config.ExportFormat, src model.RecordSource) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch format {
	case config.ExportCSV:
		err = ToCSV(f, schema.NewMemo(src).Get(), src.Records())
	case config.ExportNDJSON:
		_, err = ToNDJSON(f, src.Records())
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
