// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"os"

	"github.com/fidpa/rebootcheck/pkg/serializer"
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// BootInfoCollector reads the boot completion marker written by the
// autostart sequence. The file only exists on hosts running the managed
// boot flow and only after it finishes.
type BootInfoCollector struct {
	Path string
}

// Name implements the Collector interface.
func (c *BootInfoCollector) Name() string { return "boot_info" }

// Collect implements the Collector interface.
func (c *BootInfoCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); os.IsNotExist(err) {
		return nil
	}

	boot, err := serializer.FromFile[snapshot.BootInfo](c.Path)
	if err != nil {
		return err
	}
	snap.BootInfo = boot
	return nil
}
