// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// networkComparator checks per-interface link identity and addressing plus
// the default gateway.
type networkComparator struct{}

func (networkComparator) Name() string { return "network" }

func (c networkComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	preIfaces := interfacesByName(pre.Network)
	postIfaces := interfacesByName(post.Network)

	for _, name := range sortedKeys(ifaceNameSet(preIfaces)) {
		preIface := preIfaces[name]
		postIface, exists := postIfaces[name]
		if !exists {
			r.problem(fmt.Sprintf("%s: Interface missing after reboot", name))
			continue
		}

		preState := operStateOrUnknown(preIface)
		postState := operStateOrUnknown(postIface)
		if preState != postState {
			r.warning(fmt.Sprintf("%s: State changed %s → %s", name, preState, postState))
		}

		preIPs := preIface.IPv4Addresses()
		postIPs := postIface.IPv4Addresses()
		if !reflect.DeepEqual(preIPs, postIPs) {
			r.warning(fmt.Sprintf("%s: IP changed [%s] → [%s]",
				name,
				strings.Join(sortedKeys(preIPs), " "),
				strings.Join(sortedKeys(postIPs), " ")))
		}

		// Link-layer identity must be stable across a reboot; a changed MAC
		// means the interface name now points at different hardware.
		if preIface.MAC != postIface.MAC {
			r.problem(fmt.Sprintf("%s: MAC changed %s → %s", name, preIface.MAC, postIface.MAC))
		}
	}

	preGW := gatewayOrNone(pre.Network)
	postGW := gatewayOrNone(post.Network)
	if preGW != postGW {
		if verbose {
			r.warning(fmt.Sprintf("Default route changed: %s → %s", preGW, postGW))
		} else {
			r.warning("Default route changed")
		}
	}

	return r
}

func interfacesByName(n *snapshot.Network) map[string]snapshot.Interface {
	if n == nil {
		return nil
	}
	ifaces := make(map[string]snapshot.Interface, len(n.Interfaces))
	for _, iface := range n.Interfaces {
		if iface.Name != "" {
			ifaces[iface.Name] = iface
		}
	}
	return ifaces
}

func ifaceNameSet(ifaces map[string]snapshot.Interface) map[string]bool {
	set := make(map[string]bool, len(ifaces))
	for name := range ifaces {
		set[name] = true
	}
	return set
}

func operStateOrUnknown(iface snapshot.Interface) string {
	if iface.OperState == "" {
		return "UNKNOWN"
	}
	return iface.OperState
}

func gatewayOrNone(n *snapshot.Network) string {
	if n == nil || n.DefaultGateway == "" {
		return "none"
	}
	return n.DefaultGateway
}
