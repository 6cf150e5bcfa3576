// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

const (
	// diskCriticalPercent is the post-reboot disk usage above which the
	// section reports a problem. Strictly greater than.
	diskCriticalPercent = 90

	// diskIncreasePoints is the pre-to-post usage increase (in percentage
	// points) above which the section reports a warning.
	diskIncreasePoints = 10

	// cpuTempWarnCelsius is the CPU temperature above which the section
	// reports a warning.
	cpuTempWarnCelsius = 80
)

// systemComparator checks kernel version, disk usage, and CPU temperature.
type systemComparator struct{}

func (systemComparator) Name() string { return "system" }

func (c systemComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	preSys := pre.System
	postSys := post.System
	if preSys == nil {
		preSys = &snapshot.System{}
	}
	if postSys == nil {
		postSys = &snapshot.System{}
	}

	// A kernel change after reboot is expected maintenance, not a fault.
	if preSys.Kernel != postSys.Kernel {
		r.info(fmt.Sprintf("Kernel changed: %s → %s", preSys.Kernel, postSys.Kernel))
	}

	switch {
	case postSys.DiskUsagePercent > diskCriticalPercent:
		r.problem(fmt.Sprintf("Disk space critical: %v%% used", postSys.DiskUsagePercent))
	case postSys.DiskUsagePercent > preSys.DiskUsagePercent+diskIncreasePoints:
		r.warning(fmt.Sprintf("Disk usage increased significantly: %v%% → %v%%",
			preSys.DiskUsagePercent, postSys.DiskUsagePercent))
	}

	if temp := post.CPUTemp(); temp > cpuTempWarnCelsius {
		r.warning(fmt.Sprintf("CPU temperature high: %v°C", temp))
	}

	return r
}
