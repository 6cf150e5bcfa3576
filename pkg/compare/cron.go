// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// cronComparator diffs the cron job description sets.
type cronComparator struct{}

func (cronComparator) Name() string { return "cron_jobs" }

func (c cronComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	preJobs := toSet(pre.CronJobs)
	postJobs := toSet(post.CronJobs)

	for _, job := range sortedDiff(preJobs, postJobs) {
		r.warning(fmt.Sprintf("removed: %s", job))
	}
	for _, job := range sortedDiff(postJobs, preJobs) {
		r.info(fmt.Sprintf("added: %s", job))
	}

	return r
}
