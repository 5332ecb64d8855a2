package model

import (
	"context"
	"path/filepath"

	"jlv/internal/ingest"
	"jlv/internal/util/logx"
)

// RecordSource is an ordered, read-only set of records with a display title.
// Implementations guarantee At(i).SeqNo == i.
type RecordSource interface {
	Title() string
	Len() int
	At(i int) *Record
	Records() []*Record
}

// FileSource holds every line of a file, loaded up front.
type FileSource struct {
	path    string
	records []*Record
}

// NewFileSource builds a source from lines already read from path.
func NewFileSource(path string, lines []string) *FileSource {
	recs := make([]*Record, len(lines))
	invalid := 0
	for i, l := range lines {
		recs[i] = NewRecord(i, l)
		if !recs[i].HasValue() {
			invalid++
			logx.Debugf("line %d is not valid JSON", i+1)
		}
	}
	logx.Infof("loaded %d records from %s (%d invalid)", len(recs), path, invalid)
	return &FileSource{path: path, records: recs}
}

// OpenFile reads path and builds its records. Any read failure is returned
// and no partial source is produced.
func OpenFile(ctx context.Context, path string) (*FileSource, error) {
	lines, err := ingest.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewFileSource(path, lines), nil
}

func (s *FileSource) Title() string { return filepath.Base(s.path) }

func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Len() int { return len(s.records) }

// At returns nil when i is out of range.
func (s *FileSource) At(i int) *Record {
	if i < 0 || i >= len(s.records) {
		return nil
	}
	return s.records[i]
}

func (s *FileSource) Records() []*Record { return s.records }
