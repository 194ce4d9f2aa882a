package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/pumlrender/internal/cli"
	"github.com/matzehuels/pumlrender/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	err := c.Execute(ctx, os.Args[1:])
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode prints err to w and maps it to the process exit status.
// Render failures never reach here; any returned error is a setup failure.
// Fatal run conditions print their message bare; usage and unexpected
// errors get an "Error:" prefix.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	if errors.IsFatal(err) {
		fmt.Fprintln(w, errors.UserMessage(err))
	} else {
		fmt.Fprintln(w, "Error:", errors.UserMessage(err))
	}
	return 1
}
