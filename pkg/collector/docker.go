// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// DockerCollector gathers container names and states from the docker CLI.
type DockerCollector struct{}

// Name implements the Collector interface.
func (c *DockerCollector) Name() string { return "docker" }

// Collect implements the Collector interface. Hosts without docker installed
// simply have no section.
func (c *DockerCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	out, err := exec.CommandContext(ctx, "docker", "ps", "-a", "--format", "{{json .}}").Output()
	if errors.Is(err, exec.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("docker ps: %w", err)
	}

	containers, err := parseDockerPS(out)
	if err != nil {
		return err
	}
	snap.Docker = &snapshot.Docker{Containers: containers}
	return nil
}

// dockerPSLine is the subset of `docker ps --format json` fields we keep.
type dockerPSLine struct {
	Names string `json:"Names"`
	State string `json:"State"`
	Image string `json:"Image"`
}

func parseDockerPS(out []byte) ([]snapshot.Container, error) {
	var containers []snapshot.Container
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry dockerPSLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("parsing docker ps line %q: %w", line, err)
		}
		containers = append(containers, snapshot.Container{
			Name:  entry.Names,
			State: entry.State,
			Image: entry.Image,
		})
	}
	return containers, scanner.Err()
}
