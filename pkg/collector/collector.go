// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package collector gathers the machine state that makes up a snapshot.
//
// Each collector owns exactly one snapshot section and writes nothing else,
// so the capture orchestrator can run them concurrently against a shared
// document. Collection is best-effort: a failing collector leaves its section
// absent and the comparison layer treats absence as "no data".
package collector

import (
	"context"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// Collector gathers one section of a snapshot.
type Collector interface {
	// Name returns the section name, used for logging and timeouts.
	Name() string

	// Collect reads the live system and fills the collector's section on the
	// snapshot. Collectors must only touch their own section.
	Collect(ctx context.Context, snap *snapshot.Snapshot) error
}
