// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// Engine runs the comparator registry against a snapshot pair and aggregates
// the section results into a Report.
//
// Comparators are pure and share no mutable state, so the engine runs them
// concurrently; results land in registration-order slots so the report's
// section order is stable regardless of scheduling.
type Engine struct {
	// Version is the tool version recorded in report headers.
	Version string

	// Comparators is the ordered registry to run. If nil, Comparators() is
	// used.
	Comparators []Comparator

	// Verbose adds detail entries to change lists.
	Verbose bool
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithVersion returns an Option that sets the Engine version string.
func WithVersion(version string) Option {
	return func(e *Engine) {
		e.Version = version
	}
}

// WithVerbose returns an Option that enables verbose change reporting.
func WithVerbose(verbose bool) Option {
	return func(e *Engine) {
		e.Verbose = verbose
	}
}

// WithComparators returns an Option that replaces the comparator registry.
func WithComparators(comparators ...Comparator) Option {
	return func(e *Engine) {
		e.Comparators = comparators
	}
}

// New creates a new Engine with the provided options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run compares the pre/post snapshot pair and returns the aggregated Report.
// Both snapshots must be non-nil: comparison without either document is a
// collaborator failure that must surface before any comparator executes.
func (e *Engine) Run(ctx context.Context, pre, post *snapshot.Snapshot) (*Report, error) {
	start := time.Now()

	if pre == nil {
		return nil, fmt.Errorf("pre-reboot snapshot cannot be nil")
	}
	if post == nil {
		return nil, fmt.Errorf("post-reboot snapshot cannot be nil")
	}

	comparators := e.Comparators
	if comparators == nil {
		comparators = Comparators()
	}

	// Filter out comparators that do not apply to this pair, keeping order.
	active := make([]Comparator, 0, len(comparators))
	for _, c := range comparators {
		if cond, ok := c.(conditional); ok && !cond.applies(pre, post) {
			slog.Debug("skipping comparator", "section", c.Name())
			continue
		}
		active = append(active, c)
	}

	results := make([]Result, len(active))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range active {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sectionStart := time.Now()
			results[i] = c.Compare(pre, post, e.Verbose)
			compareSectionDuration.WithLabelValues(c.Name()).Observe(time.Since(sectionStart).Seconds())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		compareRunTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	rep := NewReport(results, pre, post, e.Version)

	compareRunTotal.WithLabelValues("success").Inc()
	compareRunDuration.Observe(time.Since(start).Seconds())
	compareProblemsFound.Set(float64(rep.TotalProblems))
	compareWarningsFound.Set(float64(rep.TotalWarnings))

	slog.Debug("comparison complete",
		"sections", len(rep.Sections),
		"problems", rep.TotalProblems,
		"warnings", rep.TotalWarnings,
		"duration", time.Since(start))

	return rep, nil
}
