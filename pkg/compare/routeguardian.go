// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// routeGuardianComparator checks the optional multi-WAN failover subsystem on
// gateway hosts. The DSL route is the primary uplink, so losing it is a
// problem; the LTE route is the fallback and only warns.
type routeGuardianComparator struct{}

func (routeGuardianComparator) Name() string { return "route_guardian" }

func (c routeGuardianComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	preRG := pre.RouteGuardian
	postRG := post.RouteGuardian

	if preRG == nil && postRG == nil {
		return skipResult(c.Name(), "Route Guardian not available (not configured)", verbose)
	}
	if preRG == nil {
		preRG = &snapshot.RouteGuardian{}
	}
	if postRG == nil {
		postRG = &snapshot.RouteGuardian{}
	}

	r := newResult(c.Name())

	if preRG.ServiceActive && !postRG.ServiceActive {
		r.problem("Route Guardian service not active after reboot")
	}

	preGW := gatewayIDOrUnknown(preRG.ActiveGateway)
	postGW := gatewayIDOrUnknown(postRG.ActiveGateway)
	if preGW != postGW {
		r.warning(fmt.Sprintf("Active gateway changed: %s → %s", preGW, postGW))
	}

	if preRG.DSLRoutePresent && !postRG.DSLRoutePresent {
		r.problem("DSL route missing after reboot")
	}
	if preRG.LTERoutePresent && !postRG.LTERoutePresent {
		r.warning("LTE route missing after reboot")
	}

	return r
}

func gatewayIDOrUnknown(gw string) string {
	if gw == "" {
		return "unknown"
	}
	return gw
}
