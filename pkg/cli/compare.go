// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fidpa/rebootcheck/pkg/compare"
	"github.com/fidpa/rebootcheck/pkg/report"
	"github.com/fidpa/rebootcheck/pkg/serializer"
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare a pre/post reboot snapshot pair",
		ArgsUsage:             "[pre-snapshot post-snapshot]",
		Description: `Compare two snapshots and report every change classified by severity.

Problems (stopped services, missing interfaces, lost containers) fail the
check and set exit code 1. Warnings and informational changes are reported
but do not affect the exit code.

# Examples

Compare two explicit snapshot files:
  rebootcheck compare pre-reboot-20260115-031500.json post-reboot-20260115-032200.json

Compare the newest pair in the snapshot directory:
  rebootcheck compare --auto-latest

Machine-readable report for automation:
  rebootcheck compare --auto-latest --format json --output report.json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "auto-latest",
				Usage: "Use the newest pre/post snapshot pair from the snapshot directory",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Include detail entries and skip notes in the report",
			},
			snapshotDirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, text, err := parseReportFormat(cmd.String("format"))
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}

			prePath, postPath, err := snapshotPaths(cmd)
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}

			slog.Info("comparing snapshots", "pre", prePath, "post", postPath)

			pre, err := snapshot.Load(prePath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("loading pre snapshot: %v", err), exitUsage)
			}
			post, err := snapshot.Load(postPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("loading post snapshot: %v", err), exitUsage)
			}

			engine := compare.New(
				compare.WithVersion(version),
				compare.WithVerbose(cmd.Bool("verbose")),
			)
			rep, err := engine.Run(ctx, pre, post)
			if err != nil {
				return cli.Exit(fmt.Sprintf("comparison failed: %v", err), exitUsage)
			}

			if err := writeReport(ctx, cmd, rep, format, text); err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}

			if !rep.Success {
				return cli.Exit(
					fmt.Sprintf("reboot verification failed: %d problem(s)", rep.TotalProblems),
					exitFailed)
			}
			return nil
		},
	}
}

func snapshotPaths(cmd *cli.Command) (string, string, error) {
	if cmd.Bool("auto-latest") {
		return FindLatestSnapshots(cmd.String("snapshot-dir"))
	}

	args := cmd.Args()
	if args.Len() != 2 {
		return "", "", fmt.Errorf("expected two snapshot paths (or --auto-latest), got %d", args.Len())
	}
	return args.Get(0), args.Get(1), nil
}

func writeReport(ctx context.Context, cmd *cli.Command, rep *compare.Report, format serializer.Format, text bool) error {
	output := cmd.String("output")

	if text {
		w := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}
		return report.WriteSummary(w, rep)
	}

	ser := serializer.NewFileWriterOrStdout(format, output)
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()
	if err := ser.Serialize(ctx, rep); err != nil {
		return fmt.Errorf("serializing report: %w", err)
	}
	return nil
}
