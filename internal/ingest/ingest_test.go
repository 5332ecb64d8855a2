package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "{\"a\":1}\r\n\n{\"b\":2}\nlast")
	lines, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{`{"a":1}`, "", `{"b":2}`, "last"}, lines)
}

func TestReadFileEmpty(t *testing.T) {
	lines, err := ReadFile(context.Background(), writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Error(t, err)
}
