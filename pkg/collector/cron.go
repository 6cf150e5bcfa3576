// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// CronCollector lists the root crontab entries.
type CronCollector struct{}

// Name implements the Collector interface.
func (c *CronCollector) Name() string { return "cron_jobs" }

// Collect implements the Collector interface. "no crontab for user" exits
// non-zero and means an empty job list, not a failure.
func (c *CronCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	out, err := exec.CommandContext(ctx, "crontab", "-l").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.Is(err, exec.ErrNotFound) || errors.As(err, &exitErr) {
			return nil
		}
		return err
	}

	snap.CronJobs = parseCrontab(out)
	return nil
}

// parseCrontab keeps schedule lines, dropping comments and blank lines.
func parseCrontab(out []byte) []string {
	var jobs []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		jobs = append(jobs, line)
	}
	return jobs
}
