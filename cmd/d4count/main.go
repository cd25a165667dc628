// Package main provides the d4count CLI.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/quartic/pkg/quartic"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the error, if any, to an exit
// code: invariant violations are internal failures, everything else is a
// user error (bad flags, bad bounds, insufficient precision).
func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, quartic.ErrInvariantViolation) {
			return exitSysError
		}
		return exitUserError
	}
	return exitSuccess
}
