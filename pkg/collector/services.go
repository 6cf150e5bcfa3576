// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// ServicesCollector gathers systemd unit states over the system bus.
type ServicesCollector struct {
	// CriticalServices are additionally probed for restart counts.
	CriticalServices []string
}

// Name implements the Collector interface.
func (c *ServicesCollector) Name() string { return "services" }

// Collect implements the Collector interface.
func (c *ServicesCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return fmt.Errorf("connecting to systemd: %w", err)
	}
	defer conn.Close()

	units, err := conn.ListUnitsContext(ctx)
	if err != nil {
		return fmt.Errorf("listing units: %w", err)
	}

	svcs := &snapshot.Services{}
	for _, unit := range units {
		if !strings.HasSuffix(unit.Name, ".service") {
			continue
		}
		switch {
		case unit.ActiveState == "failed":
			svcs.Failed = append(svcs.Failed, unit.Name)
		case unit.SubState == "running":
			svcs.Running = append(svcs.Running, unit.Name)
		}
		if unit.ActiveState == "active" {
			svcs.Enabled = append(svcs.Enabled, unit.Name)
		}
	}
	sort.Strings(svcs.Running)
	sort.Strings(svcs.Enabled)
	sort.Strings(svcs.Failed)
	snap.Services = svcs

	snap.CriticalServices = c.collectCritical(ctx, conn)
	return nil
}

// collectCritical probes each configured critical unit individually. Probe
// failures degrade to an unknown state record instead of failing the section.
func (c *ServicesCollector) collectCritical(ctx context.Context, conn *dbus.Conn) map[string]snapshot.CriticalService {
	if len(c.CriticalServices) == 0 {
		return nil
	}

	critical := make(map[string]snapshot.CriticalService, len(c.CriticalServices))
	for _, unit := range c.CriticalServices {
		svc := snapshot.CriticalService{Active: "unknown"}

		if prop, err := conn.GetUnitPropertyContext(ctx, unit, "ActiveState"); err == nil {
			if state, ok := prop.Value.Value().(string); ok {
				svc.Active = state
			}
		} else {
			slog.Warn("probing unit state failed", "unit", unit, "error", err)
		}

		if prop, err := conn.GetServicePropertyContext(ctx, unit, "NRestarts"); err == nil {
			if restarts, ok := prop.Value.Value().(uint32); ok {
				svc.Restarts = int(restarts)
			}
		}

		critical[strings.TrimSuffix(unit, ".service")] = svc
	}
	return critical
}
