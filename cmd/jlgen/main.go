// Command jlgen writes sample JSON Lines for trying out jlv: records share a
// few keys, add random extras in varying order, and a configurable share of
// lines are not valid JSON at all.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	count   int
	out     string
	invalid float64
	seed    int64
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           "jlgen",
		Short:         "Generate sample JSONL for jlv",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.count < 0 {
				return fmt.Errorf("--count must be >= 0, got %d", o.count)
			}
			if o.invalid < 0 || o.invalid > 1 {
				return fmt.Errorf("--invalid must be within [0,1], got %v", o.invalid)
			}
			var w io.Writer = cmd.OutOrStdout()
			if o.out != "" && o.out != "-" {
				f, err := os.Create(o.out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return generate(w, o)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.count, "count", "n", 200, "number of lines")
	f.StringVarP(&o.out, "out", "o", "", "output path (default stdout)")
	f.Float64Var(&o.invalid, "invalid", 0.05, "share of lines that are not JSON")
	f.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "random seed")
	return cmd
}

func generate(w io.Writer, o options) error {
	r := rand.New(rand.NewSource(o.seed))
	bw := bufio.NewWriter(w)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < o.count; i++ {
		ts := start.Add(time.Duration(i) * 137 * time.Millisecond)
		line := ""
		if r.Float64() < o.invalid {
			line = brokenLine(r, ts)
		} else {
			b, err := record(r, ts).MarshalJSON()
			if err != nil {
				return err
			}
			line = string(b)
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var extras = []string{
	"request_id", "user_id", "region", "latency_ms", "ok", "code",
	"path", "method", "host", "retry", "bytes", "env", "component", "tags", "ctx",
}

// record always starts with ts, level and msg; extras follow in a shuffled
// order so the first-seen column order is not alphabetical.
func record(r *rand.Rand, ts time.Time) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any]()
	m.Set("ts", ts.Format(time.RFC3339Nano))
	m.Set("level", pick(r, "info", "info", "info", "debug", "warn", "error"))
	m.Set("msg", pick(r, "user authenticated", "request completed", "cache miss", "cache hit",
		"db query executed", "rate limit exceeded", "background job finished", "invalid credentials"))
	names := append([]string(nil), extras...)
	r.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	for _, name := range names[:r.Intn(6)] {
		m.Set(name, value(r, name))
	}
	return m
}

func value(r *rand.Rand, name string) any {
	switch name {
	case "user_id", "code", "bytes":
		return r.Intn(10000)
	case "latency_ms":
		return float64(r.Intn(500000)) / 100
	case "ok", "retry":
		return r.Intn(2) == 0
	case "method":
		return pick(r, "GET", "POST", "PUT", "PATCH", "DELETE")
	case "path":
		return pick(r, "/", "/health", "/login", "/api/v1/items", fmt.Sprintf("/api/v1/items/%d", r.Intn(1000)))
	case "region":
		return pick(r, "us-east-1", "us-west-2", "eu-west-1", "sa-east-1", "ap-northeast-1")
	case "env":
		return pick(r, "dev", "staging", "prod")
	case "component":
		return pick(r, "ingest", "parse", "ui", "export", "auth")
	case "host":
		return pick(r, "cdn.example.com", "assets.example.com", "media.example.org")
	case "tags":
		return []string{pick(r, "alpha", "beta"), pick(r, "blue", "green")}
	case "ctx":
		return map[string]any{"attempt": r.Intn(3) + 1, "trace": randHex(r, 8)}
	default:
		return randHex(r, 16)
	}
}

func brokenLine(r *rand.Rand, ts time.Time) string {
	switch r.Intn(3) {
	case 0:
		return fmt.Sprintf("[%s] plain text line id=%s", ts.Format(time.RFC3339), randHex(r, 8))
	case 1:
		return `{"ts":"2025-01-01T12:00:00Z","level":"warn","msg":"truncated`
	default:
		return ""
	}
}

func pick(r *rand.Rand, opts ...string) string { return opts[r.Intn(len(opts))] }

func randHex(r *rand.Rand, n int) string {
	const digits = "0123456789abcdef"
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[r.Intn(len(digits))]
	}
	return string(b)
}
