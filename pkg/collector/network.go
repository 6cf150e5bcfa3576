// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vishvananda/netlink"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// NetworkCollector gathers link, address, and default route state via
// netlink, mirroring the shape of `ip -j addr`.
type NetworkCollector struct{}

// Name implements the Collector interface.
func (c *NetworkCollector) Name() string { return "network" }

// Collect implements the Collector interface.
func (c *NetworkCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	links, err := netlink.LinkList()
	if err != nil {
		return fmt.Errorf("listing links: %w", err)
	}

	net := &snapshot.Network{}
	for _, link := range links {
		attrs := link.Attrs()
		iface := snapshot.Interface{
			Name:      attrs.Name,
			OperState: strings.ToUpper(attrs.OperState.String()),
			MAC:       attrs.HardwareAddr.String(),
		}

		addrs, err := netlink.AddrList(link, netlink.FAMILY_ALL)
		if err != nil {
			slog.Warn("listing addresses failed", "link", attrs.Name, "error", err)
		}
		for _, addr := range addrs {
			if addr.IPNet == nil {
				continue
			}
			family := "inet6"
			if addr.IP.To4() != nil {
				family = "inet"
			}
			prefixLen, _ := addr.Mask.Size()
			iface.AddrInfo = append(iface.AddrInfo, snapshot.AddrInfo{
				Family:    family,
				Local:     addr.IP.String(),
				PrefixLen: prefixLen,
			})
		}

		net.Interfaces = append(net.Interfaces, iface)
	}

	net.DefaultGateway = defaultGateway()
	snap.Network = net
	return nil
}

// defaultGateway returns the gateway of the first IPv4 default route, or ""
// when the host has none.
func defaultGateway() string {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		slog.Warn("listing routes failed", "error", err)
		return ""
	}
	for _, route := range routes {
		if route.Dst == nil && route.Gw != nil {
			return route.Gw.String()
		}
	}
	return ""
}
