// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"sort"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

const containerStateRunning = "running"

// dockerComparator checks that containers survive the reboot in their
// previous state.
type dockerComparator struct{}

func (dockerComparator) Name() string { return "docker" }

func (c dockerComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	preContainers := containerStates(pre.Docker)
	postContainers := containerStates(post.Docker)

	if len(preContainers) == 0 && len(postContainers) == 0 {
		return skipResult(c.Name(), "No containers present (skipping)", verbose)
	}

	r := newResult(c.Name())

	for _, name := range sortedContainerNames(preContainers) {
		state := preContainers[name]
		postState, exists := postContainers[name]
		switch {
		case !exists:
			r.problem(fmt.Sprintf("%s: Missing after reboot", name))
		case state == containerStateRunning && postState != containerStateRunning:
			r.problem(fmt.Sprintf("%s: Was %s, now %s", name, state, postState))
		}
	}

	for _, name := range sortedContainerNames(postContainers) {
		if _, exists := preContainers[name]; !exists {
			r.info(fmt.Sprintf("new: %s", name))
		}
	}

	return r
}

// containerStates maps container name to state, dropping unnamed entries.
func containerStates(d *snapshot.Docker) map[string]string {
	if d == nil {
		return nil
	}
	states := make(map[string]string, len(d.Containers))
	for _, c := range d.Containers {
		if c.Name != "" {
			states[c.Name] = c.State
		}
	}
	return states
}

func sortedContainerNames(states map[string]string) []string {
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
