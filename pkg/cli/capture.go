// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/fidpa/rebootcheck/pkg/collector"
	"github.com/fidpa/rebootcheck/pkg/serializer"
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

func captureCmd() *cli.Command {
	return &cli.Command{
		Name:                  "capture",
		EnableShellCompletion: true,
		Usage:                 "Capture a system snapshot",
		Description: `Capture a snapshot of the running system for later comparison.

Collectors run concurrently and are best-effort: sections whose data source
is unavailable on this host (no docker, no WireGuard, no Pi firmware) are
simply absent from the snapshot.

# Examples

Capture before a planned reboot:
  rebootcheck capture --type pre-reboot

Capture after the reboot, to an explicit file:
  rebootcheck capture --type post-reboot --output /var/log/snapshots/post-reboot-manual.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Snapshot type: pre-reboot or post-reboot",
				Value:   snapshot.TypePreReboot,
			},
			&cli.StringSliceFlag{
				Name:  "critical-service",
				Usage: "Critical systemd unit to track (can be repeated)",
			},
			&cli.StringSliceFlag{
				Name:  "config-file",
				Usage: "Config file to checksum (can be repeated)",
			},
			snapshotDirFlag,
			outputFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: json or yaml",
				Value:   string(serializer.FormatJSON),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := serializer.Format(cmd.String("format"))
			if format.IsUnknown() || format == serializer.FormatTable {
				return cli.Exit(fmt.Sprintf("unknown snapshot format: %q", cmd.String("format")), exitUsage)
			}

			typ := cmd.String("type")

			opts := []collector.Option{}
			if services := cmd.StringSlice("critical-service"); len(services) > 0 {
				opts = append(opts, collector.WithCriticalServices(services))
			}
			if files := cmd.StringSlice("config-file"); len(files) > 0 {
				opts = append(opts, collector.WithConfigFiles(files))
			}
			factory := collector.NewDefaultFactory(opts...)

			snap, err := collector.Capture(ctx, typ, version, factory.All())
			if err != nil {
				return cli.Exit(fmt.Sprintf("capture failed: %v", err), exitUsage)
			}

			output := cmd.String("output")
			if output == "" {
				output = filepath.Join(cmd.String("snapshot-dir"),
					fmt.Sprintf("%s-%s.%s", typ, snap.Timestamp, format))
			}

			ser := serializer.NewFileWriterOrStdout(format, output)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			if err := ser.Serialize(ctx, snap); err != nil {
				return cli.Exit(fmt.Sprintf("writing snapshot: %v", err), exitUsage)
			}

			slog.Info("snapshot written", "type", typ, "output", output)
			return nil
		},
	}
}
