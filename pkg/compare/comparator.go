// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package compare implements the post-reboot comparison core: a registry of
// section comparators that each consume a pre/post snapshot pair and emit a
// normalized Result, plus the Engine that runs them and aggregates the
// Results into a Report.
//
// Comparators are pure: they read only from the two snapshots, never log at
// info or print, and are safe to run in any order or in parallel.
package compare

import (
	"sort"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// Comparator compares one section of a pre/post snapshot pair.
type Comparator interface {
	// Name returns the section name used in Results.
	Name() string

	// Compare produces the section Result. Both snapshots are read-only.
	// verbose adds detail entries (and not-available notes for skipped
	// sections) to the change list without affecting severity counts.
	Compare(pre, post *snapshot.Snapshot, verbose bool) Result
}

// conditional is implemented by comparators that only apply to certain
// snapshot pairs (e.g. boot validation on post-reboot documents).
type conditional interface {
	applies(pre, post *snapshot.Snapshot) bool
}

// Comparators returns the full ordered comparator registry. The order fixes
// the display order of sections in reports and summaries.
func Comparators() []Comparator {
	return []Comparator{
		systemComparator{},
		servicesComparator{},
		dockerComparator{},
		networkComparator{},
		usbComparator{},
		routeGuardianComparator{},
		fleetComparator{},
		networkManagerComparator{},
		wireGuardComparator{},
		hardwareComparator{},
		criticalServicesComparator{},
		checksumComparator{},
		memoryComparator{},
		cronComparator{},
		bootComparator{},
	}
}

// skipResult builds the zero result for a section whose data is absent from
// both documents. The not-available note is only recorded in verbose mode so
// that quiet sections stay out of default summaries.
func skipResult(section, note string, verbose bool) Result {
	r := newResult(section)
	if verbose {
		r.info(note)
	}
	return r
}

// toSet converts a string slice into a membership set.
func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// sortedDiff returns the members of a that are not in b, sorted for
// deterministic output.
func sortedDiff(a, b map[string]bool) []string {
	var out []string
	for item := range a {
		if !b[item] {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

// sortedKeys returns the sorted member list of a set.
func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
