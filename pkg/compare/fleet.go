// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// fleetDevices is the fixed set of fleet nodes checked for reachability.
var fleetDevices = []string{
	"watchdog",
	"security",
	"dns_gateway",
	"gpio_bedroom",
	"gpio_bathroom",
}

// fleetComparator tracks reachability transitions of the Pi Zero fleet.
// Reachability flaps are expected on battery/WiFi nodes, so this section
// never raises problems.
type fleetComparator struct{}

func (fleetComparator) Name() string { return "pi_zero_fleet" }

func (c fleetComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	if len(pre.Fleet) == 0 && len(post.Fleet) == 0 {
		return skipResult(c.Name(), "Pi Zero fleet not available (not configured)", verbose)
	}

	r := newResult(c.Name())

	for _, device := range fleetDevices {
		preDev := pre.Fleet[device]
		postDev := post.Fleet[device]

		switch {
		case preDev.Reachable && !postDev.Reachable:
			r.warning(fmt.Sprintf("%s (%s): Unreachable after reboot", device, ipOrUnknown(postDev.IP)))
		case !preDev.Reachable && postDev.Reachable:
			r.info(fmt.Sprintf("%s (%s): Now reachable", device, ipOrUnknown(postDev.IP)))
		}
	}

	return r
}

func ipOrUnknown(ip string) string {
	if ip == "" {
		return "unknown"
	}
	return ip
}
