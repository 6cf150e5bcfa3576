// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	compareRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rebootcheck_compare_duration_seconds",
			Help:    "Time taken to run a complete snapshot comparison",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	compareRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebootcheck_compare_total",
			Help: "Total number of comparison runs",
		},
		[]string{"result"}, // success or failed
	)

	compareSectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rebootcheck_compare_section_duration_seconds",
			Help:    "Time taken by individual section comparators",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"section"},
	)

	compareProblemsFound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rebootcheck_compare_problems",
			Help: "Number of problems found in the last comparison run",
		},
	)

	compareWarningsFound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rebootcheck_compare_warnings",
			Help: "Number of warnings found in the last comparison run",
		},
	)
)
