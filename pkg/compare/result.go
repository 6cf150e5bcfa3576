// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"time"

	"github.com/fidpa/rebootcheck/pkg/header"
	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// Result is the outcome of one section comparison. It is created once per
// comparator invocation and immutable afterwards.
//
// Changes accumulates at least one entry for every condition that increments
// Problems or Warnings, and may also carry purely informational entries.
type Result struct {
	// Section is the snapshot section name this result describes.
	Section string `json:"section" yaml:"section"`

	// Problems counts severity-1 findings that fail the overall check.
	Problems int `json:"problems" yaml:"problems"`

	// Warnings counts severity-2 findings that are notable but non-fatal.
	Warnings int `json:"warnings" yaml:"warnings"`

	// Changes lists human-readable change descriptions in detection order.
	Changes []string `json:"changes" yaml:"changes"`
}

// newResult creates an empty Result for a section. Changes is allocated so
// the section serializes as an empty list rather than null.
func newResult(section string) Result {
	return Result{
		Section: section,
		Changes: make([]string, 0),
	}
}

func (r *Result) problem(msg string) {
	r.Problems++
	r.Changes = append(r.Changes, msg)
}

func (r *Result) warning(msg string) {
	r.Warnings++
	r.Changes = append(r.Changes, msg)
}

func (r *Result) info(msg string) {
	r.Changes = append(r.Changes, msg)
}

// Bucket is the mutually exclusive display classification of a section,
// derived from its raw counts. The raw counts stay on the Result for the
// machine-readable contract; buckets exist for narrative grouping only.
type Bucket string

const (
	// BucketCritical marks sections with at least one problem.
	BucketCritical Bucket = "critical"
	// BucketWarning marks sections with warnings but no problems.
	BucketWarning Bucket = "warning"
	// BucketInfo marks sections with informational changes only.
	BucketInfo Bucket = "info"
	// BucketNone marks sections with nothing to report; they are omitted
	// from summaries entirely.
	BucketNone Bucket = "none"
)

// Bucket classifies the result for summary rendering.
func (r Result) Bucket() Bucket {
	switch {
	case r.Problems > 0:
		return BucketCritical
	case r.Warnings > 0:
		return BucketWarning
	case len(r.Changes) > 0:
		return BucketInfo
	default:
		return BucketNone
	}
}

// APIVersion is the schema version of report documents.
const APIVersion = "rebootcheck/v1"

// Report is the aggregate of all section results for one comparison run.
// Totals are commutative sums, so comparator execution order never changes
// them; Sections preserves comparator registration order for display.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Timestamp is when the comparison ran (UTC).
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// PreTimestamp and PostTimestamp echo the compared documents' capture
	// times in their original layout.
	PreTimestamp  string `json:"pre_reboot_time" yaml:"pre_reboot_time"`
	PostTimestamp string `json:"post_reboot_time" yaml:"post_reboot_time"`

	TotalProblems int `json:"total_problems" yaml:"total_problems"`
	TotalWarnings int `json:"total_warnings" yaml:"total_warnings"`

	Sections []Result `json:"sections" yaml:"sections"`

	// Success is true when no section reported a problem.
	Success bool `json:"success" yaml:"success"`
}

// NewReport aggregates section results into a Report. The reduction is a
// pure fold over results: totals, success flag, and an initialized header.
func NewReport(results []Result, pre, post *snapshot.Snapshot, version string) *Report {
	rep := &Report{
		Timestamp: time.Now().UTC(),
		Sections:  results,
	}
	rep.Init(header.KindReport, APIVersion, version)

	if pre != nil {
		rep.PreTimestamp = pre.Timestamp
	}
	if post != nil {
		rep.PostTimestamp = post.Timestamp
	}

	for _, r := range results {
		rep.TotalProblems += r.Problems
		rep.TotalWarnings += r.Warnings
	}
	rep.Success = rep.TotalProblems == 0

	return rep
}

// InBucket returns the sections classified into the given bucket,
// preserving comparator invocation order.
func (rep *Report) InBucket(b Bucket) []Result {
	var out []Result
	for _, r := range rep.Sections {
		if r.Bucket() == b {
			out = append(out, r)
		}
	}
	return out
}
