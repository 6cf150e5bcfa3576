// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package report renders comparison reports as human-readable summaries.
//
// The summary is a narrative projection of the machine-readable report:
// sections are grouped into critical, warning, and informational blocks and
// quiet sections are omitted entirely. Serialization of the report document
// itself lives in pkg/serializer.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fidpa/rebootcheck/pkg/compare"
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// maxCriticalExamples caps the change lines shown per critical section so a
// broken host does not scroll the verdict off screen.
const maxCriticalExamples = 3

// WriteSummary writes the human-readable verdict for a comparison report.
func WriteSummary(w io.Writer, rep *compare.Report) error {
	if rep == nil {
		return fmt.Errorf("report cannot be nil")
	}

	fmt.Fprintln(w, "=== Reboot Verification ===")
	fmt.Fprintf(w, "Pre-reboot:  %s\n", rep.PreTimestamp)
	fmt.Fprintf(w, "Post-reboot: %s\n", rep.PostTimestamp)

	if delta, ok := rebootWindow(rep.PreTimestamp, rep.PostTimestamp); ok {
		fmt.Fprintf(w, "Reboot window: %s\n", delta)
	}

	if critical := rep.InBucket(compare.BucketCritical); len(critical) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "CRITICAL:")
		for _, s := range critical {
			fmt.Fprintf(w, "  [%s] %d problem(s)\n", s.Section, s.Problems)
			for i, change := range s.Changes {
				if i == maxCriticalExamples {
					fmt.Fprintf(w, "    ... and %d more\n", len(s.Changes)-maxCriticalExamples)
					break
				}
				fmt.Fprintf(w, "    - %s\n", change)
			}
		}
	}

	if warnings := rep.InBucket(compare.BucketWarning); len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "WARNINGS:")
		for _, s := range warnings {
			fmt.Fprintf(w, "  [%s]\n", s.Section)
			for _, change := range s.Changes {
				fmt.Fprintf(w, "    - %s\n", change)
			}
		}
	}

	if info := rep.InBucket(compare.BucketInfo); len(info) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "INFO:")
		for _, s := range info {
			fmt.Fprintf(w, "  [%s]\n", s.Section)
			for _, change := range s.Changes {
				fmt.Fprintf(w, "    - %s\n", change)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Result: %d problem(s), %d warning(s)\n", rep.TotalProblems, rep.TotalWarnings)
	if rep.Success {
		fmt.Fprintln(w, "Reboot verification PASSED")
	} else {
		fmt.Fprintln(w, "Reboot verification FAILED")
	}

	return nil
}

// rebootWindow computes the elapsed time between the two capture timestamps.
// Unparseable or out-of-order timestamps disable the line without error; the
// timestamps are echoed verbatim above it either way.
func rebootWindow(pre, post string) (time.Duration, bool) {
	preTime, err := time.Parse(snapshot.TimestampLayout, pre)
	if err != nil {
		return 0, false
	}
	postTime, err := time.Parse(snapshot.TimestampLayout, post)
	if err != nil {
		return 0, false
	}
	delta := postTime.Sub(preTime)
	if delta < 0 {
		return 0, false
	}
	return delta, true
}
