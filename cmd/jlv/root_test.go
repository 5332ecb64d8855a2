package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlv/internal/config"
)

const sample = "../../testdata/sample.jsonl"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stderr.String(), err
}

func TestMissingFilenamePrintsUsage(t *testing.T) {
	stderr, err := execute(t)
	require.ErrorIs(t, err, config.ErrNoFilename)
	assert.Contains(t, stderr, "jlv [FILENAME]")
}

func TestRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "--theme", "neon", sample)
	assert.ErrorContains(t, err, "unknown theme")

	_, err = execute(t, "--export", "csv", sample)
	assert.ErrorContains(t, err, "--out")

	_, err = execute(t, "a.jsonl", "b.jsonl")
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	_, err := execute(t, "--export", "csv", "--out", out, sample)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, rows, 5)
	assert.Equal(t, "line,a,b,c,d", rows[0])
}

func TestExportNDJSONWithFilenameFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.jsonl")
	_, err := execute(t, "-f", sample, "--export", "json", "--out", out)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(b), "\n"), "the invalid line is skipped")
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "--export", "csv", "--out", filepath.Join(t.TempDir(), "x.csv"), "does-not-exist.jsonl")
	assert.Error(t, err)
}
