// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fidpa/rebootcheck/pkg/header"
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// collectorTimeout bounds each collector so one hung probe (a dead dbus, an
// unreachable fleet segment) cannot stall the whole capture.
const collectorTimeout = 30 * time.Second

// snapshotAPIVersion is the schema version of snapshot documents.
const snapshotAPIVersion = "rebootcheck/v1"

// Capture runs all collectors concurrently and assembles a snapshot of the
// given type. Collection is best-effort: individual collector failures are
// logged and leave their section absent, they never fail the capture.
func Capture(ctx context.Context, typ, version string, collectors []Collector) (*snapshot.Snapshot, error) {
	if typ != snapshot.TypePreReboot && typ != snapshot.TypePostReboot {
		return nil, fmt.Errorf("unknown snapshot type %q", typ)
	}

	snap := &snapshot.Snapshot{
		Timestamp: time.Now().Format(snapshot.TimestampLayout),
		Type:      typ,
	}
	snap.Init(header.KindSnapshot, snapshotAPIVersion, version)

	if hostname, err := os.Hostname(); err == nil {
		snap.Hostname = hostname
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range collectors {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, collectorTimeout)
			defer cancel()

			colStart := time.Now()
			if err := c.Collect(cctx, snap); err != nil {
				slog.Warn("collector failed", "collector", c.Name(), "error", err)
				return nil
			}
			slog.Debug("collector done", "collector", c.Name(), "duration", time.Since(colStart))
			return nil
		})
	}

	// Collector errors are swallowed above, so Wait cannot fail; a canceled
	// parent context still aborts the capture as a whole.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Info("capture complete",
		"type", typ,
		"hostname", snap.Hostname,
		"duration", time.Since(start))

	return snap, nil
}
