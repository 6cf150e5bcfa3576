// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

func dockerSnap(containers ...snapshot.Container) *snapshot.Snapshot {
	return &snapshot.Snapshot{Docker: &snapshot.Docker{Containers: containers}}
}

func TestDockerComparator(t *testing.T) {
	t.Run("skip when no containers anywhere", func(t *testing.T) {
		r := dockerComparator{}.Compare(&snapshot.Snapshot{}, &snapshot.Snapshot{}, false)
		assert.Zero(t, r.Problems)
		assert.Empty(t, r.Changes)

		verbose := dockerComparator{}.Compare(&snapshot.Snapshot{}, &snapshot.Snapshot{}, true)
		assert.Contains(t, verbose.Changes, "No containers present (skipping)")
	})

	t.Run("missing container is a problem", func(t *testing.T) {
		pre := dockerSnap(snapshot.Container{Name: "pihole", State: "running"})
		post := dockerSnap()

		r := dockerComparator{}.Compare(pre, post, false)
		require.Equal(t, 1, r.Problems)
		assert.Contains(t, r.Changes, "pihole: Missing after reboot")
	})

	t.Run("state regression is a problem", func(t *testing.T) {
		pre := dockerSnap(snapshot.Container{Name: "pihole", State: "running"})
		post := dockerSnap(snapshot.Container{Name: "pihole", State: "exited"})

		r := dockerComparator{}.Compare(pre, post, false)
		require.Equal(t, 1, r.Problems)
		assert.Contains(t, r.Changes, "pihole: Was running, now exited")
	})

	t.Run("new container is informational", func(t *testing.T) {
		pre := dockerSnap(snapshot.Container{Name: "pihole", State: "running"})
		post := dockerSnap(
			snapshot.Container{Name: "pihole", State: "running"},
			snapshot.Container{Name: "unifi", State: "running"},
		)

		r := dockerComparator{}.Compare(pre, post, false)
		assert.Zero(t, r.Problems)
		assert.Zero(t, r.Warnings)
		assert.Equal(t, []string{"new: unifi"}, r.Changes)
	})
}

func usbSnap(devices ...string) *snapshot.Snapshot {
	return &snapshot.Snapshot{USBDevices: devices}
}

func TestUSBComparator(t *testing.T) {
	t.Run("removed network adapter is a problem", func(t *testing.T) {
		pre := usbSnap("Realtek RTL8153 Gigabit Ethernet Adapter", "Logitech USB Receiver")
		post := usbSnap("Logitech USB Receiver")

		r := usbComparator{}.Compare(pre, post, false)
		assert.Equal(t, 1, r.Problems)
		assert.Zero(t, r.Warnings)
		require.Len(t, r.Changes, 1)
		assert.Contains(t, r.Changes[0], "missing:")
	})

	t.Run("removed ordinary device warns", func(t *testing.T) {
		pre := usbSnap("Logitech USB Receiver")
		post := usbSnap()

		r := usbComparator{}.Compare(pre, post, false)
		assert.Zero(t, r.Problems)
		assert.Equal(t, 1, r.Warnings)
	})

	t.Run("added device is informational", func(t *testing.T) {
		pre := usbSnap()
		post := usbSnap("SanDisk Ultra")

		r := usbComparator{}.Compare(pre, post, false)
		assert.Zero(t, r.Problems)
		assert.Zero(t, r.Warnings)
		assert.Equal(t, []string{"added: SanDisk Ultra"}, r.Changes)
	})
}

func TestRouteGuardianComparator(t *testing.T) {
	t.Run("skip when not configured", func(t *testing.T) {
		r := routeGuardianComparator{}.Compare(&snapshot.Snapshot{}, &snapshot.Snapshot{}, false)
		assert.Empty(t, r.Changes)
	})

	t.Run("service and route loss", func(t *testing.T) {
		pre := &snapshot.Snapshot{RouteGuardian: &snapshot.RouteGuardian{
			ServiceActive:   true,
			ActiveGateway:   "dsl",
			DSLRoutePresent: true,
			LTERoutePresent: true,
		}}
		post := &snapshot.Snapshot{RouteGuardian: &snapshot.RouteGuardian{
			ServiceActive:   false,
			ActiveGateway:   "lte",
			DSLRoutePresent: false,
			LTERoutePresent: false,
		}}

		r := routeGuardianComparator{}.Compare(pre, post, false)
		// service inactive + DSL route lost
		assert.Equal(t, 2, r.Problems)
		// gateway change + LTE route lost
		assert.Equal(t, 2, r.Warnings)
		assert.Contains(t, r.Changes, "Active gateway changed: dsl → lte")
	})
}

func TestFleetComparator(t *testing.T) {
	pre := &snapshot.Snapshot{Fleet: map[string]snapshot.FleetDevice{
		"watchdog": {Reachable: true, IP: "10.0.0.11"},
		"security": {Reachable: false, IP: "10.0.0.12"},
	}}
	post := &snapshot.Snapshot{Fleet: map[string]snapshot.FleetDevice{
		"watchdog": {Reachable: false, IP: "10.0.0.11"},
		"security": {Reachable: true, IP: "10.0.0.12"},
	}}

	r := fleetComparator{}.Compare(pre, post, false)

	assert.Zero(t, r.Problems, "fleet flaps never fail the check")
	assert.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "watchdog (10.0.0.11): Unreachable after reboot")
	assert.Contains(t, r.Changes, "security (10.0.0.12): Now reachable")
}

func TestNetworkManagerComparator(t *testing.T) {
	pre := &snapshot.Snapshot{NetworkManager: &snapshot.NetworkManager{
		ActiveConnections: []snapshot.Connection{{Name: "wired", State: "activated"}},
	}}
	post := &snapshot.Snapshot{NetworkManager: &snapshot.NetworkManager{
		ActiveConnections: []snapshot.Connection{{Name: "wifi", State: "activated"}},
	}}

	r := networkManagerComparator{}.Compare(pre, post, false)

	assert.Zero(t, r.Problems)
	assert.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "deactivated: wired")
	assert.Contains(t, r.Changes, "activated: wifi")
}

func TestWireGuardComparator(t *testing.T) {
	t.Run("skip when inactive in both", func(t *testing.T) {
		r := wireGuardComparator{}.Compare(&snapshot.Snapshot{}, &snapshot.Snapshot{}, false)
		assert.Empty(t, r.Changes)
	})

	t.Run("interface down after reboot", func(t *testing.T) {
		pre := &snapshot.Snapshot{WireGuard: &snapshot.WireGuard{InterfaceActive: true, PeersCount: 3}}
		post := &snapshot.Snapshot{WireGuard: &snapshot.WireGuard{InterfaceActive: false}}

		r := wireGuardComparator{}.Compare(pre, post, false)
		assert.Equal(t, 1, r.Problems)
		assert.Equal(t, 1, r.Warnings)
		assert.Contains(t, r.Changes, "WireGuard interface not active after reboot")
		assert.Contains(t, r.Changes, "Peer count changed: 3 → 0")
	})
}

func TestHardwareComparator(t *testing.T) {
	post := &snapshot.Snapshot{Hardware: &snapshot.Hardware{
		ThrottleEvents: &snapshot.ThrottleEvents{UnderVoltage: true, CurrentlyThrottled: true},
	}}

	r := hardwareComparator{}.Compare(&snapshot.Snapshot{}, post, false)

	assert.Zero(t, r.Problems)
	assert.Equal(t, 2, r.Warnings)
	assert.Contains(t, r.Changes, "Under-voltage detected")
	assert.Contains(t, r.Changes, "CPU throttling active")
}

func TestCriticalServicesComparator(t *testing.T) {
	pre := &snapshot.Snapshot{CriticalServices: map[string]snapshot.CriticalService{
		"sshd":      {Active: "active", Restarts: 0},
		"dnsmasq":   {Active: "active", Restarts: 2},
		"wireguard": {Active: "active", Restarts: 1},
	}}
	post := &snapshot.Snapshot{CriticalServices: map[string]snapshot.CriticalService{
		"sshd":      {Active: "inactive", Restarts: 0},
		"dnsmasq":   {Active: "active", Restarts: 5},
		"wireguard": {Active: "active", Restarts: 1},
	}}

	r := criticalServicesComparator{}.Compare(pre, post, false)

	assert.Equal(t, 1, r.Problems)
	assert.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "sshd: Not active (state: inactive)")
	assert.Contains(t, r.Changes, "dnsmasq: Restarted 3 times during reboot")
}

func TestChecksumComparator(t *testing.T) {
	pre := &snapshot.Snapshot{ConfigChecksums: map[string]string{
		"/etc/dnsmasq.conf":    "aaa111",
		"/etc/wireguard/wg0":   "bbb222",
		"/etc/systemd/system/": "ccc333",
	}}
	post := &snapshot.Snapshot{ConfigChecksums: map[string]string{
		"/etc/dnsmasq.conf":  "aaa111",
		"/etc/wireguard/wg0": "ddd444",
	}}

	r := checksumComparator{}.Compare(pre, post, false)
	assert.Zero(t, r.Problems)
	assert.Equal(t, 2, r.Warnings, "one changed hash plus one vanished file")

	verbose := checksumComparator{}.Compare(pre, post, true)
	assert.Contains(t, verbose.Changes, "/etc/wireguard/wg0: Checksum changed (pre bbb222, post ddd444)")
	assert.Contains(t, verbose.Changes, "/etc/systemd/system/: Checksum changed (pre ccc333, post missing)")
}

func TestMemoryComparator(t *testing.T) {
	tests := []struct {
		name         string
		swap         float64
		wantWarnings int
		wantChanges  int
	}{
		{name: "no swap use", swap: 0},
		{name: "moderate swap is informational", swap: 12.5, wantChanges: 1},
		{name: "heavy swap warns", swap: 60, wantWarnings: 1, wantChanges: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &snapshot.Snapshot{MemoryDetail: &snapshot.MemoryDetail{SwapUsagePercent: tt.swap}}
			r := memoryComparator{}.Compare(&snapshot.Snapshot{}, post, false)
			assert.Zero(t, r.Problems)
			assert.Equal(t, tt.wantWarnings, r.Warnings)
			assert.Len(t, r.Changes, tt.wantChanges)
		})
	}
}

func TestCronComparator(t *testing.T) {
	pre := &snapshot.Snapshot{CronJobs: []string{"0 3 * * * backup", "*/5 * * * * healthcheck"}}
	post := &snapshot.Snapshot{CronJobs: []string{"*/5 * * * * healthcheck", "0 4 * * * certbot renew"}}

	r := cronComparator{}.Compare(pre, post, false)

	assert.Zero(t, r.Problems)
	assert.Equal(t, 1, r.Warnings)
	assert.Contains(t, r.Changes, "removed: 0 3 * * * backup")
	assert.Contains(t, r.Changes, "added: 0 4 * * * certbot renew")
}

func TestBootComparator(t *testing.T) {
	postReboot := func(boot *snapshot.BootInfo) *snapshot.Snapshot {
		return &snapshot.Snapshot{Type: snapshot.TypePostReboot, BootInfo: boot}
	}

	t.Run("only applies to post-reboot documents", func(t *testing.T) {
		c := bootComparator{}
		assert.False(t, c.applies(&snapshot.Snapshot{}, &snapshot.Snapshot{Type: snapshot.TypePreReboot}))
		assert.True(t, c.applies(&snapshot.Snapshot{}, postReboot(nil)))
	})

	t.Run("complete boot with long duration", func(t *testing.T) {
		r := bootComparator{}.Compare(&snapshot.Snapshot{}, postReboot(&snapshot.BootInfo{
			PhasesCompleted:     13,
			BootDurationSeconds: 301.0,
		}), false)

		assert.Zero(t, r.Problems)
		require.Equal(t, 1, r.Warnings)
		assert.Contains(t, r.Changes[0], "Boot duration long")
	})

	t.Run("incomplete boot", func(t *testing.T) {
		r := bootComparator{}.Compare(&snapshot.Snapshot{}, postReboot(&snapshot.BootInfo{
			PhasesCompleted: 12,
		}), false)

		require.Equal(t, 1, r.Problems)
		assert.Contains(t, r.Changes, "Incomplete boot: Only 12/13 phases completed")
	})

	t.Run("unknown duration is tolerated", func(t *testing.T) {
		r := bootComparator{}.Compare(&snapshot.Snapshot{}, postReboot(&snapshot.BootInfo{
			PhasesCompleted:     13,
			BootDurationSeconds: "unknown",
		}), false)

		assert.Zero(t, r.Problems)
		assert.Zero(t, r.Warnings)
	})

	t.Run("explicitly unavailable is skipped", func(t *testing.T) {
		unavailable := false
		r := bootComparator{}.Compare(&snapshot.Snapshot{}, postReboot(&snapshot.BootInfo{
			Available: &unavailable,
		}), false)

		assert.Zero(t, r.Problems)
		assert.Empty(t, r.Changes)
	})
}
