// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.zx2c4.com/wireguard/wgctrl"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// wireGuardInterface is the VPN interface name probed for peer state.
const wireGuardInterface = "wg0"

// WireGuardCollector gathers VPN interface and peer state.
type WireGuardCollector struct{}

// Name implements the Collector interface.
func (c *WireGuardCollector) Name() string { return "wireguard" }

// Collect implements the Collector interface. A host without the interface
// gets an inactive record rather than an error, so the section stays
// comparable across configured and unconfigured machines.
func (c *WireGuardCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	client, err := wgctrl.New()
	if err != nil {
		return fmt.Errorf("opening wireguard control: %w", err)
	}
	defer client.Close()

	device, err := client.Device(wireGuardInterface)
	if errors.Is(err, os.ErrNotExist) {
		snap.WireGuard = &snapshot.WireGuard{InterfaceActive: false}
		return nil
	}
	if err != nil {
		return fmt.Errorf("querying %s: %w", wireGuardInterface, err)
	}

	snap.WireGuard = &snapshot.WireGuard{
		InterfaceActive: true,
		PeersCount:      len(device.Peers),
	}
	return nil
}
