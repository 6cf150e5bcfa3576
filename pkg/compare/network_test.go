// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

func netSnap(ifaces []snapshot.Interface, gateway string) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Network: &snapshot.Network{Interfaces: ifaces, DefaultGateway: gateway},
	}
}

func eth0(mac, ip, state string) snapshot.Interface {
	iface := snapshot.Interface{Name: "eth0", MAC: mac, OperState: state}
	if ip != "" {
		iface.AddrInfo = []snapshot.AddrInfo{
			{Family: "inet", Local: ip, PrefixLen: 24},
			{Family: "inet6", Local: "fe80::1"},
		}
	}
	return iface
}

func TestNetworkInterfaceMissing(t *testing.T) {
	pre := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "192.168.1.10", "UP")}, "192.168.1.1")
	post := netSnap(nil, "192.168.1.1")

	r := networkComparator{}.Compare(pre, post, false)

	require.Equal(t, 1, r.Problems)
	assert.Contains(t, r.Changes, "eth0: Interface missing after reboot")
}

func TestNetworkMACChange(t *testing.T) {
	pre := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "192.168.1.10", "UP")}, "")
	post := netSnap([]snapshot.Interface{eth0("11:22:33:44:55:66", "192.168.1.10", "UP")}, "")

	r := networkComparator{}.Compare(pre, post, false)

	require.Equal(t, 1, r.Problems)
	assert.Contains(t, r.Changes, "eth0: MAC changed aa:bb:cc:dd:ee:ff → 11:22:33:44:55:66")
}

func TestNetworkIPChangeIsWarning(t *testing.T) {
	pre := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "192.168.1.10", "UP")}, "")
	post := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "192.168.1.20", "UP")}, "")

	r := networkComparator{}.Compare(pre, post, false)

	assert.Zero(t, r.Problems)
	require.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "eth0: IP changed [192.168.1.10] → [192.168.1.20]")
}

func TestNetworkIPv6Ignored(t *testing.T) {
	pre := netSnap([]snapshot.Interface{{
		Name: "eth0", MAC: "aa:bb:cc:dd:ee:ff", OperState: "UP",
		AddrInfo: []snapshot.AddrInfo{
			{Family: "inet", Local: "192.168.1.10"},
			{Family: "inet6", Local: "fe80::1"},
		},
	}}, "")
	post := netSnap([]snapshot.Interface{{
		Name: "eth0", MAC: "aa:bb:cc:dd:ee:ff", OperState: "UP",
		AddrInfo: []snapshot.AddrInfo{
			{Family: "inet", Local: "192.168.1.10"},
			{Family: "inet6", Local: "fe80::2"},
		},
	}}, "")

	r := networkComparator{}.Compare(pre, post, false)

	assert.Zero(t, r.Problems)
	assert.Zero(t, r.Warnings)
	assert.Empty(t, r.Changes)
}

func TestNetworkStateChange(t *testing.T) {
	pre := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "", "UP")}, "")
	post := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "", "")}, "")

	r := networkComparator{}.Compare(pre, post, false)

	require.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "eth0: State changed UP → UNKNOWN")
}

func TestNetworkGatewayChange(t *testing.T) {
	pre := netSnap(nil, "192.168.1.1")
	post := netSnap(nil, "192.168.1.254")

	r := networkComparator{}.Compare(pre, post, false)
	require.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "Default route changed")

	verbose := networkComparator{}.Compare(pre, post, true)
	assert.Contains(t, verbose.Changes, "Default route changed: 192.168.1.1 → 192.168.1.254")
}

func TestNetworkNewInterfaceIgnored(t *testing.T) {
	pre := netSnap(nil, "")
	post := netSnap([]snapshot.Interface{eth0("aa:bb:cc:dd:ee:ff", "192.168.1.10", "UP")}, "")

	r := networkComparator{}.Compare(pre, post, false)

	assert.Zero(t, r.Problems)
	assert.Zero(t, r.Warnings)
	assert.Empty(t, r.Changes)
}
