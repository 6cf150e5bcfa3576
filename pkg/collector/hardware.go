// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// Firmware throttle bit positions reported by `vcgencmd get_throttled`.
const (
	throttleBitUnderVoltage = 0
	throttleBitThrottled    = 2
	throttleBitSoftTemp     = 3
)

// HardwareCollector reads the firmware throttle flags on Raspberry Pi class
// boards.
type HardwareCollector struct{}

// Name implements the Collector interface.
func (c *HardwareCollector) Name() string { return "hardware" }

// Collect implements the Collector interface. Non-Pi hosts without vcgencmd
// have no hardware section.
func (c *HardwareCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	out, err := exec.CommandContext(ctx, "vcgencmd", "get_throttled").Output()
	if errors.Is(err, exec.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("vcgencmd: %w", err)
	}

	events, err := parseThrottled(string(out))
	if err != nil {
		return err
	}
	snap.Hardware = &snapshot.Hardware{ThrottleEvents: events}
	return nil
}

// parseThrottled decodes output of the form "throttled=0x50005".
func parseThrottled(out string) (*snapshot.ThrottleEvents, error) {
	_, value, found := strings.Cut(strings.TrimSpace(out), "=")
	if !found {
		return nil, fmt.Errorf("unexpected vcgencmd output: %q", out)
	}
	mask, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing throttle mask %q: %w", value, err)
	}

	return &snapshot.ThrottleEvents{
		UnderVoltage:       mask&(1<<throttleBitUnderVoltage) != 0,
		CurrentlyThrottled: mask&(1<<throttleBitThrottled) != 0,
		SoftTempLimit:      mask&(1<<throttleBitSoftTemp) != 0,
	}, nil
}
