// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// networkAdapterChipsets identifies USB network adapters whose disappearance
// takes down connectivity on hosts that uplink through them.
var networkAdapterChipsets = []string{"RTL8153", "RTL8156"}

// usbComparator diffs USB device descriptor sets, escalating removed network
// adapters to problems.
type usbComparator struct{}

func (usbComparator) Name() string { return "usb_devices" }

func (c usbComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	preDevices := toSet(pre.USBDevices)
	postDevices := toSet(post.USBDevices)

	for _, device := range sortedDiff(preDevices, postDevices) {
		if isNetworkAdapter(device) {
			r.problem(fmt.Sprintf("missing: %s", device))
		} else {
			r.warning(fmt.Sprintf("removed: %s", device))
		}
	}

	for _, device := range sortedDiff(postDevices, preDevices) {
		r.info(fmt.Sprintf("added: %s", device))
	}

	return r
}

func isNetworkAdapter(device string) bool {
	for _, chipset := range networkAdapterChipsets {
		if strings.Contains(device, chipset) {
			return true
		}
	}
	return false
}
