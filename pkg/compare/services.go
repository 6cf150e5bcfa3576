// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// bulletMarker is a systemctl output artifact that leaks into failed-service
// captures and must not be counted as a unit name.
const bulletMarker = "●"

// servicesComparator diffs the running and failed systemd unit sets.
type servicesComparator struct{}

func (servicesComparator) Name() string { return "services" }

func (c servicesComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	var preRunning, postRunning, preFailed, postFailed map[string]bool
	if pre.Services != nil {
		preRunning = toSet(pre.Services.Running)
		preFailed = toSet(pre.Services.Failed)
	}
	if post.Services != nil {
		postRunning = toSet(post.Services.Running)
		postFailed = toSet(post.Services.Failed)
	}

	delete(preFailed, bulletMarker)
	delete(postFailed, bulletMarker)

	for _, svc := range sortedDiff(preRunning, postRunning) {
		r.problem(fmt.Sprintf("stopped: %s", svc))
	}
	for _, svc := range sortedDiff(postRunning, preRunning) {
		r.info(fmt.Sprintf("started: %s", svc))
	}
	for _, svc := range sortedDiff(postFailed, preFailed) {
		r.problem(fmt.Sprintf("failed: %s", svc))
	}

	return r
}
