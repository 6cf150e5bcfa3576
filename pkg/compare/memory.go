// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// swapWarnPercent is the post-reboot swap usage above which the section
// reports a warning. Any swap use right after boot is unusual enough to
// mention, so lower non-zero values still produce an informational entry.
const swapWarnPercent = 50

// memoryComparator examines swap usage on the post snapshot only.
type memoryComparator struct{}

func (memoryComparator) Name() string { return "memory_detail" }

func (c memoryComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	var swap float64
	if post.MemoryDetail != nil {
		swap = post.MemoryDetail.SwapUsagePercent
	}

	switch {
	case swap > swapWarnPercent:
		r.warning(fmt.Sprintf("Swap usage high: %v%%", swap))
	case swap > 0:
		r.info(fmt.Sprintf("swap usage: %v%%", swap))
	}

	return r
}
