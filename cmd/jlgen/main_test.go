package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlv/internal/model"
	"jlv/internal/schema"
)

func TestGenerateIsSeeded(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, generate(&a, options{count: 50, invalid: 0.2, seed: 7}))
	require.NoError(t, generate(&b, options{count: 50, invalid: 0.2, seed: 7}))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 50, strings.Count(a.String(), "\n"))
}

func TestGenerateValidRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, options{count: 30, seed: 1}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 30)

	src := model.NewFileSource("gen.jsonl", lines)
	for _, r := range src.Records() {
		require.True(t, r.IsObject(), r.Raw)
		assert.Equal(t, "ts", r.Fields()[0].Key)
	}
	assert.Equal(t, []string{"ts", "level", "msg"}, schema.Build(src.Records()).Headers()[:3])
}

func TestGenerateAllInvalid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, options{count: 10, invalid: 1, seed: 3}))
	for _, l := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.False(t, model.NewRecord(0, l).HasValue(), l)
	}
}

func TestRootCmdRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{{"--count", "-1"}, {"--invalid", "1.5"}} {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		assert.Error(t, cmd.Execute(), args)
	}
}

func TestRootCmdWritesStdout(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-n", "3", "--seed", "5", "--invalid", "0"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}
