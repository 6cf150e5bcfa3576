// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

const (
	procUptime  = "/proc/uptime"
	procLoadavg = "/proc/loadavg"
	thermalZone = "/sys/class/thermal/thermal_zone0/temp"
)

// SystemCollector gathers kernel, disk, temperature, and load readings.
type SystemCollector struct{}

// Name implements the Collector interface.
func (c *SystemCollector) Name() string { return "system" }

// Collect implements the Collector interface.
func (c *SystemCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	sys := &snapshot.System{}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fmt.Errorf("uname: %w", err)
	}
	sys.Kernel = unix.ByteSliceToString(uts.Release[:])

	var stat unix.Statfs_t
	if err := unix.Statfs("/", &stat); err != nil {
		return fmt.Errorf("statfs /: %w", err)
	}
	sys.DiskUsagePercent = diskUsagePercent(stat.Blocks, stat.Bfree, stat.Bavail)

	if uptime, err := readUptime(procUptime); err == nil {
		sys.Uptime = uptime
	}
	if load, err := readLoadAverage(procLoadavg); err == nil {
		sys.LoadAverage = load
	}
	if temp, err := readCPUTemp(thermalZone); err == nil {
		sys.CPUTemp = temp
	}

	snap.System = sys
	return nil
}

// diskUsagePercent computes used space the way df does: the reserved root
// blocks count as used, so used% is relative to blocks reachable by users.
func diskUsagePercent(blocks, bfree, bavail uint64) float64 {
	used := blocks - bfree
	total := used + bavail
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

func readUptime(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty uptime file")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", fmt.Errorf("parsing uptime %q: %w", fields[0], err)
	}
	return formatUptime(int64(secs)), nil
}

func formatUptime(secs int64) string {
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("up %dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("up %dh %dm", hours, mins)
}

func readLoadAverage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return "", fmt.Errorf("malformed loadavg: %q", string(data))
	}
	return strings.Join(fields[:3], " "), nil
}

// readCPUTemp reads the thermal zone in millidegrees Celsius.
func readCPUTemp(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing thermal zone %q: %w", strings.TrimSpace(string(data)), err)
	}
	return milli / 1000, nil
}
