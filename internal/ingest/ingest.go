package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/nxadm/tail"
)

// ReadFile returns every line of path without line terminators. The file is
// read once to EOF; nothing is followed afterwards.
func ReadFile(ctx context.Context, path string) ([]string, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    false,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var out []string
	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return nil, ctx.Err()
		case l, ok := <-t.Lines:
			if !ok {
				if err := t.Wait(); err != nil {
					return nil, fmt.Errorf("read %s: %w", path, err)
				}
				return out, nil
			}
			if l.Err != nil {
				_ = t.Stop()
				return nil, fmt.Errorf("read %s: %w", path, l.Err)
			}
			out = append(out, strings.TrimSuffix(l.Text, "\r"))
		}
	}
}
