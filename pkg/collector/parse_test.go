// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

func TestParseDockerPS(t *testing.T) {
	out := []byte(`{"Names":"pihole","State":"running","Image":"pihole/pihole:latest"}
{"Names":"unifi","State":"exited","Image":"jacobalberty/unifi:v8"}
`)

	containers, err := parseDockerPS(out)
	require.NoError(t, err)
	require.Len(t, containers, 2)
	assert.Equal(t, snapshot.Container{Name: "pihole", State: "running", Image: "pihole/pihole:latest"}, containers[0])
	assert.Equal(t, "exited", containers[1].State)
}

func TestParseDockerPSEmpty(t *testing.T) {
	containers, err := parseDockerPS([]byte("\n"))
	require.NoError(t, err)
	assert.Empty(t, containers)
}

func TestParseDockerPSMalformed(t *testing.T) {
	_, err := parseDockerPS([]byte("not json"))
	assert.Error(t, err)
}

func TestParseLsusb(t *testing.T) {
	out := []byte(`Bus 001 Device 004: ID 0bda:8153 Realtek Semiconductor Corp. RTL8153 Gigabit Ethernet Adapter
Bus 001 Device 002: ID 2109:3431 VIA Labs, Inc. Hub
Bus 001 Device 001: ID 1d6b:0002 Linux Foundation 2.0 root hub
`)

	devices := parseLsusb(out)
	require.Len(t, devices, 3)
	// Bus and device numbers move across reboots and must not be part of the
	// identity.
	assert.Equal(t, "ID 0bda:8153 Realtek Semiconductor Corp. RTL8153 Gigabit Ethernet Adapter", devices[0])
}

func TestParseThrottled(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want snapshot.ThrottleEvents
	}{
		{
			name: "healthy",
			out:  "throttled=0x0\n",
			want: snapshot.ThrottleEvents{},
		},
		{
			name: "under-voltage and throttled",
			out:  "throttled=0x5\n",
			want: snapshot.ThrottleEvents{UnderVoltage: true, CurrentlyThrottled: true},
		},
		{
			name: "soft temp limit",
			out:  "throttled=0x8\n",
			want: snapshot.ThrottleEvents{SoftTempLimit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseThrottled(tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseThrottledMalformed(t *testing.T) {
	_, err := parseThrottled("garbage\n")
	assert.Error(t, err)

	_, err = parseThrottled("throttled=0xZZ\n")
	assert.Error(t, err)
}

func TestParseNmcliConnections(t *testing.T) {
	out := []byte("wired:activated\nvpn-home:activating\n")

	conns := parseNmcliConnections(out)
	require.Len(t, conns, 2)
	assert.Equal(t, snapshot.Connection{Name: "wired", State: "activated"}, conns[0])
	assert.Equal(t, snapshot.Connection{Name: "vpn-home", State: "activating"}, conns[1])
}

func TestParseCrontab(t *testing.T) {
	out := []byte(`# m h dom mon dow command

0 3 * * * /usr/local/bin/backup.sh
*/5 * * * * /usr/local/bin/healthcheck.sh
`)

	jobs := parseCrontab(out)
	assert.Equal(t, []string{
		"0 3 * * * /usr/local/bin/backup.sh",
		"*/5 * * * * /usr/local/bin/healthcheck.sh",
	}, jobs)
}

func TestParseMeminfoSwap(t *testing.T) {
	data := []byte(`MemTotal:        3884924 kB
MemFree:          123456 kB
SwapTotal:        102400 kB
SwapFree:          51200 kB
`)

	detail, err := parseMeminfoSwap(data)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, detail.SwapUsagePercent, 0.01)
	assert.InDelta(t, 100.0, detail.SwapTotalMB, 0.01)
}

func TestParseMeminfoNoSwap(t *testing.T) {
	data := []byte("MemTotal: 3884924 kB\nSwapTotal: 0 kB\nSwapFree: 0 kB\n")

	detail, err := parseMeminfoSwap(data)
	require.NoError(t, err)
	assert.Zero(t, detail.SwapUsagePercent)
	assert.Zero(t, detail.SwapTotalMB)
}
