package logx

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	Debugf("hidden")
	Infof("shown %d", 1)
	require.Len(t, Lines(), 1)
	assert.Contains(t, Lines()[0], "INFO  shown 1")

	SetLevel(Debug)
	Debugf("now visible")
	assert.Contains(t, Dump(), "DEBUG now visible")
}

func TestRingKeepsNewest(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	for i := 0; i < maxLines+10; i++ {
		Infof("line %d", i)
	}
	lines := Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 10"), lines[0])
	assert.True(t, strings.HasSuffix(lines[maxLines-1], fmt.Sprintf("line %d", maxLines+9)))
}

func TestOutputEcho(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	Warnf("careful")
	assert.Contains(t, buf.String(), "WARN  careful")
}

func TestEnv(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	t.Setenv("JLV_LOG_LEVEL", " Warning ")
	t.Setenv("JLV_LOG_STDERR", "no")
	SetLevelFromEnv()
	Infof("dropped")
	Errorf("kept")
	require.Len(t, Lines(), 1)
	assert.Contains(t, Lines()[0], "ERROR kept")
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, Debug, l)
	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}
