// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-ping/ping"
	"golang.org/x/time/rate"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

const (
	fleetPingCount   = 1
	fleetPingTimeout = 2 * time.Second

	// fleetProbesPerSecond paces ICMP probes so a large fleet does not burst
	// onto a WiFi segment all at once.
	fleetProbesPerSecond = 5
)

// FleetCollector probes fleet node reachability with ICMP.
type FleetCollector struct {
	// Devices maps node names to IP addresses.
	Devices map[string]string
}

// Name implements the Collector interface.
func (c *FleetCollector) Name() string { return "pi_zero_fleet" }

// Collect implements the Collector interface. Unreachable nodes are recorded,
// not errors: reachability is exactly what the section measures.
func (c *FleetCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	if len(c.Devices) == 0 {
		return nil
	}

	limiter := rate.NewLimiter(rate.Limit(fleetProbesPerSecond), 1)
	fleet := make(map[string]snapshot.FleetDevice, len(c.Devices))

	for name, ip := range c.Devices {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		fleet[name] = snapshot.FleetDevice{
			Reachable: pingOnce(ip),
			IP:        ip,
		}
	}

	snap.Fleet = fleet
	return nil
}

func pingOnce(addr string) bool {
	pinger, err := ping.NewPinger(addr)
	if err != nil {
		slog.Warn("creating pinger failed", "addr", addr, "error", err)
		return false
	}
	pinger.Count = fleetPingCount
	pinger.Timeout = fleetPingTimeout
	pinger.SetPrivileged(true)

	if err := pinger.Run(); err != nil {
		slog.Debug("ping failed", "addr", addr, "error", err)
		return false
	}
	return pinger.Statistics().PacketsRecv > 0
}
