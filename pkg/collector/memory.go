// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

const procMeminfo = "/proc/meminfo"

// MemoryCollector gathers swap usage from /proc/meminfo.
type MemoryCollector struct{}

// Name implements the Collector interface.
func (c *MemoryCollector) Name() string { return "memory_detail" }

// Collect implements the Collector interface.
func (c *MemoryCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	data, err := os.ReadFile(procMeminfo)
	if err != nil {
		return fmt.Errorf("reading meminfo: %w", err)
	}

	detail, err := parseMeminfoSwap(data)
	if err != nil {
		return err
	}
	snap.MemoryDetail = detail
	return nil
}

// parseMeminfoSwap extracts SwapTotal and SwapFree (kB) and derives usage.
// A host without swap reports zero usage, not an error.
func parseMeminfoSwap(data []byte) (*snapshot.MemoryDetail, error) {
	var totalKB, freeKB float64
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, rest, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		if key != "SwapTotal" && key != "SwapFree" {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		kb, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing meminfo %s %q: %w", key, fields[0], err)
		}
		if key == "SwapTotal" {
			totalKB = kb
		} else {
			freeKB = kb
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	detail := &snapshot.MemoryDetail{SwapTotalMB: totalKB / 1024}
	if totalKB > 0 {
		detail.SwapUsagePercent = (totalKB - freeKB) / totalKB * 100
	}
	return detail, nil
}
