// Package main is the carbonhub command.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carbonhub-app/carbonhub/internal/cli"
	"github.com/carbonhub-app/carbonhub/pkg/version"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

// extractExitCode maps an error returned by run to the process exit code.
func extractExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitError
}

func main() {
	err := run()
	code := extractExitCode(err)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == exitUsage {
			fmt.Fprintln(os.Stderr, "Run 'carbonhub --help' for usage.")
		}
	}
	os.Exit(code)
}
