// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// wireGuardComparator checks that the VPN interface comes back after reboot
// with its peer set intact.
type wireGuardComparator struct{}

func (wireGuardComparator) Name() string { return "wireguard" }

func (c wireGuardComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	preActive := pre.WireGuard != nil && pre.WireGuard.InterfaceActive
	postActive := post.WireGuard != nil && post.WireGuard.InterfaceActive

	if !preActive && !postActive {
		return skipResult(c.Name(), "WireGuard not active (not configured)", verbose)
	}

	r := newResult(c.Name())

	if preActive && !postActive {
		r.problem("WireGuard interface not active after reboot")
	}

	prePeers := 0
	postPeers := 0
	if pre.WireGuard != nil {
		prePeers = pre.WireGuard.PeersCount
	}
	if post.WireGuard != nil {
		postPeers = post.WireGuard.PeersCount
	}
	if prePeers != postPeers {
		r.warning(fmt.Sprintf("Peer count changed: %d → %d", prePeers, postPeers))
	}

	return r
}
