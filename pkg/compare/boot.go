// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

const (
	// bootPhasesExpected is the number of startup milestones a complete
	// boot passes through.
	bootPhasesExpected = 13

	// bootDurationWarnSeconds is the boot duration above which the section
	// reports a warning.
	bootDurationWarnSeconds = 300
)

// bootComparator validates boot completion. It only applies to post-reboot
// documents and reads the post snapshot alone; the boot_info section is
// written by the autostart collaborator and is often absent.
type bootComparator struct{}

func (bootComparator) Name() string { return "boot_info" }

func (bootComparator) applies(pre, post *snapshot.Snapshot) bool {
	return post.IsPostReboot()
}

func (c bootComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	boot := post.BootInfo

	if boot == nil {
		return skipResult(c.Name(), "Boot info not available (not collected by snapshot)", verbose)
	}
	if !boot.IsAvailable() {
		return skipResult(c.Name(), "Boot info marked unavailable", verbose)
	}

	r := newResult(c.Name())

	if boot.PhasesCompleted < bootPhasesExpected {
		r.problem(fmt.Sprintf("Incomplete boot: Only %d/%d phases completed",
			boot.PhasesCompleted, bootPhasesExpected))
	}

	if duration, ok := boot.DurationSeconds(); ok && duration > bootDurationWarnSeconds {
		r.warning(fmt.Sprintf("Boot duration long: %ds (>%dm)", duration, duration/60))
	}

	return r
}
