// Package appshell wires process signals and exit codes around a command.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitNotConverged = 1 // --require-converged and no compliant template
	ExitUsage        = 2 // bad flags, settings or layout
	ExitRuntime      = 3 // I/O or other run failure
	ExitCancelled    = 130
)

// Main runs run with a context cancelled on SIGINT/SIGTERM and exits with
// its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(Run(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Run is Main without os.Exit.
func Run(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == ExitOK {
		code = ExitCancelled
	}
	return code
}
