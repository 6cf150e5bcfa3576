// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// USBCollector inventories attached USB devices via lsusb.
type USBCollector struct{}

// Name implements the Collector interface.
func (c *USBCollector) Name() string { return "usb_devices" }

// Collect implements the Collector interface.
func (c *USBCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	out, err := exec.CommandContext(ctx, "lsusb").Output()
	if errors.Is(err, exec.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lsusb: %w", err)
	}

	snap.USBDevices = parseLsusb(out)
	return nil
}

// parseLsusb strips the bus/device position from each line, keeping the
// stable "ID vvvv:pppp description" identity. Position moves across reboots
// even when the device set is unchanged.
func parseLsusb(out []byte) []string {
	var devices []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, id, found := strings.Cut(line, ": "); found {
			devices = append(devices, id)
		} else {
			devices = append(devices, line)
		}
	}
	return devices
}
