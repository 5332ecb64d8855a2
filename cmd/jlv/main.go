package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jlv/internal/util/logx"
)

func main() {
	logx.SetLevelFromEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
