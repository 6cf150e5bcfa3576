// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package cli implements the rebootcheck command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/fidpa/rebootcheck/pkg/logging"
)

const name = "rebootcheck"

// Exit codes of the compare command. Scripts branch on these, so they are
// part of the interface: 0 clean, 1 problems found, 2 usage or I/O error.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Capture and compare pre/post reboot system snapshots",
		Description: `rebootcheck verifies that a machine came back healthy after a reboot.

capture records a snapshot of the running system (services, containers,
network, USB devices, VPN, fleet reachability, config checksums) before or
after a reboot. compare diffs a pre/post snapshot pair, classifies every
change by severity, and exits non-zero when something did not survive the
reboot.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			captureCmd(),
			compareCmd(),
			versionCmd(),
		},
		// Exit codes are mapped in Run; the library must not os.Exit on its
		// own.
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
	}
}

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd().Run(ctx, args)
	if err == nil {
		return exitOK
	}

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := coder.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		return coder.ExitCode()
	}

	fmt.Fprintln(os.Stderr, err)
	return exitUsage
}
