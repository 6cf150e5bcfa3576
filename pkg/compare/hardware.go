// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// hardwareComparator surfaces firmware throttle flags on single-board
// computers. Only the post snapshot matters: pre-reboot throttling was
// cleared by the reboot itself.
type hardwareComparator struct{}

func (hardwareComparator) Name() string { return "hardware_throttling" }

func (c hardwareComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	preEvents := throttleEvents(pre.Hardware)
	postEvents := throttleEvents(post.Hardware)

	if preEvents == nil && postEvents == nil {
		return skipResult(c.Name(), "Hardware throttling data not available", verbose)
	}

	r := newResult(c.Name())

	if postEvents != nil {
		if postEvents.UnderVoltage {
			r.warning("Under-voltage detected")
		}
		if postEvents.CurrentlyThrottled {
			r.warning("CPU throttling active")
		}
		if postEvents.SoftTempLimit {
			r.warning("Soft temperature limit reached")
		}
	}

	return r
}

func throttleEvents(h *snapshot.Hardware) *snapshot.ThrottleEvents {
	if h == nil {
		return nil
	}
	return h.ThrottleEvents
}
