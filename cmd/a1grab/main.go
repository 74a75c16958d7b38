// Package main is the entry point for the a1grab CLI.
//
// a1grab retries launching a single OCI Ampere A1 flexible-shape instance
// until Oracle has capacity. It provisions the surrounding network once,
// then loops: check for an existing managed instance, attempt a launch,
// classify the failure, wait, try the next availability domain.
//
// Commands: run, init, keygen, doctor, version, completion.
//
// For detailed usage information, run:
//
//	a1grab --help
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/a1grab/cmd/a1grab/commands"
	"github.com/imamik/a1grab/internal/provisioning/engine"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// Setup-phase calls (auth, network readiness waits) surface an
		// interrupt as a wrapped context error rather than ErrInterrupted.
		if errors.Is(err, engine.ErrInterrupted) || errors.Is(err, context.Canceled) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
