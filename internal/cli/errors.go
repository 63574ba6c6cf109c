package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrNotTerminal is returned by interactive commands run without a TTY.
var ErrNotTerminal = errors.New("the dashboard requires an interactive terminal")

// UsageError marks an invalid invocation: bad flags, arguments or values.
// cmd/carbonhub exits with code 2 for these.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// exactArgs is cobra.ExactArgs reporting a UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}
