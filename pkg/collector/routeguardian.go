// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"log/slog"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/vishvananda/netlink"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// Default uplink gateways of the dual-WAN setup.
const (
	defaultDSLGateway = "192.168.1.1"
	defaultLTEGateway = "192.168.8.1"
)

// RouteGuardianCollector gathers the state of the multi-WAN failover
// subsystem: its service unit plus the presence of the DSL and LTE default
// routes.
type RouteGuardianCollector struct {
	// Unit is the failover service unit name.
	Unit string

	// DSLGateway and LTEGateway identify the uplink default routes.
	DSLGateway string
	LTEGateway string
}

// Name implements the Collector interface.
func (c *RouteGuardianCollector) Name() string { return "route_guardian" }

// Collect implements the Collector interface.
func (c *RouteGuardianCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	dslGW := c.DSLGateway
	if dslGW == "" {
		dslGW = defaultDSLGateway
	}
	lteGW := c.LTEGateway
	if lteGW == "" {
		lteGW = defaultLTEGateway
	}

	rg := &snapshot.RouteGuardian{}

	if conn, err := dbus.NewSystemConnectionContext(ctx); err == nil {
		defer conn.Close()
		if prop, err := conn.GetUnitPropertyContext(ctx, c.Unit, "ActiveState"); err == nil {
			state, _ := prop.Value.Value().(string)
			rg.ServiceActive = state == "active"
		}
	} else {
		slog.Warn("connecting to systemd failed", "error", err)
	}

	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return err
	}

	bestMetric := -1
	for _, route := range routes {
		if route.Dst != nil || route.Gw == nil {
			continue
		}
		gw := route.Gw.String()
		switch gw {
		case dslGW:
			rg.DSLRoutePresent = true
		case lteGW:
			rg.LTERoutePresent = true
		default:
			continue
		}
		// The lowest-metric default route is the one actually carrying
		// traffic.
		if bestMetric == -1 || route.Priority < bestMetric {
			bestMetric = route.Priority
			if gw == dslGW {
				rg.ActiveGateway = "dsl"
			} else {
				rg.ActiveGateway = "lte"
			}
		}
	}

	snap.RouteGuardian = rg
	return nil
}
