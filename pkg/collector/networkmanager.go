// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// NetworkManagerCollector lists active NetworkManager connections.
type NetworkManagerCollector struct{}

// Name implements the Collector interface.
func (c *NetworkManagerCollector) Name() string { return "networkmanager" }

// Collect implements the Collector interface. Hosts managed by plain
// networkd or dhcpcd have no nmcli and no section.
func (c *NetworkManagerCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	out, err := exec.CommandContext(ctx,
		"nmcli", "-t", "-f", "NAME,STATE", "connection", "show", "--active").Output()
	if errors.Is(err, exec.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("nmcli: %w", err)
	}

	snap.NetworkManager = &snapshot.NetworkManager{
		ActiveConnections: parseNmcliConnections(out),
	}
	return nil
}

// parseNmcliConnections splits terse "NAME:STATE" lines. Connection names
// with escaped colons are left as nmcli prints them.
func parseNmcliConnections(out []byte) []snapshot.Connection {
	var conns []snapshot.Connection
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, state, found := strings.Cut(line, ":")
		if !found {
			name = line
		}
		conns = append(conns, snapshot.Connection{Name: name, State: state})
	}
	return conns
}
