// Package logx keeps a bounded in-memory log. Nothing is written to the
// terminal unless an output is set, since the TUI owns the screen.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warn", "warning":
		return Warn, true
	case "error":
		return Error, true
	}
	return Info, false
}

const maxLines = 500

var (
	mu    sync.Mutex
	level = Info
	ring  [maxLines]string
	head  int // next slot to write
	count int
	out   io.Writer
)

func SetLevel(l Level) { mu.Lock(); level = l; mu.Unlock() }

// SetOutput echoes every retained line to w as well; nil turns it off.
func SetOutput(w io.Writer) { mu.Lock(); out = w; mu.Unlock() }

// SetLevelFromEnv reads JLV_LOG_LEVEL, and JLV_LOG_STDERR=1 to echo to stderr.
func SetLevelFromEnv() {
	if l, ok := ParseLevel(os.Getenv("JLV_LOG_LEVEL")); ok {
		SetLevel(l)
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("JLV_LOG_STDERR"))) {
	case "", "0", "false", "no":
	default:
		SetOutput(os.Stderr)
	}
}

func Debugf(format string, a ...any) { logf(Debug, format, a...) }
func Infof(format string, a ...any)  { logf(Info, format, a...) }
func Warnf(format string, a ...any)  { logf(Warn, format, a...) }
func Errorf(format string, a ...any) { logf(Error, format, a...) }

func logf(l Level, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	line := fmt.Sprintf("%s %-5s %s", time.Now().Format("2006-01-02T15:04:05.000Z07:00"), l, fmt.Sprintf(format, a...))
	ring[head] = line
	head = (head + 1) % maxLines
	if count < maxLines {
		count++
	}
	if out != nil {
		fmt.Fprintln(out, line)
	}
}

// Lines returns the retained lines, oldest first.
func Lines() []string {
	mu.Lock()
	defer mu.Unlock()
	lines := make([]string, count)
	start := (head - count + maxLines) % maxLines
	for i := range lines {
		lines[i] = ring[(start+i)%maxLines]
	}
	return lines
}

func Dump() string { return strings.Join(Lines(), "\n") }

// Reset drops retained lines and restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	head, count = 0, 0
	level = Info
	out = nil
}
