// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidpa/rebootcheck/pkg/compare"
)

func sampleReport() *compare.Report {
	return compare.NewReport([]compare.Result{
		{Section: "services", Problems: 1, Changes: []string{"stopped: dnsmasq.service"}},
		{Section: "network", Warnings: 1, Changes: []string{"eth0: State changed UP → DOWN"}},
		{Section: "system", Changes: []string{"Kernel changed: 6.6.20 → 6.6.31"}},
		{Section: "docker", Changes: []string{}},
	}, nil, nil, "test")
}

func TestWriteSummaryGrouping(t *testing.T) {
	rep := sampleReport()
	rep.PreTimestamp = "20260115-031500"
	rep.PostTimestamp = "20260115-032200"

	var buf strings.Builder
	require.NoError(t, WriteSummary(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "CRITICAL:")
	assert.Contains(t, out, "[services] 1 problem(s)")
	assert.Contains(t, out, "stopped: dnsmasq.service")
	assert.Contains(t, out, "WARNINGS:")
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "Kernel changed")
	assert.NotContains(t, out, "[docker]", "quiet sections are omitted")
	assert.Contains(t, out, "Result: 1 problem(s), 1 warning(s)")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "Reboot window: 7m0s")
}

func TestWriteSummaryPassVerdict(t *testing.T) {
	rep := compare.NewReport([]compare.Result{
		{Section: "system", Changes: []string{}},
	}, nil, nil, "test")

	var buf strings.Builder
	require.NoError(t, WriteSummary(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "PASSED")
	assert.NotContains(t, out, "CRITICAL:")
	assert.NotContains(t, out, "WARNINGS:")
	assert.NotContains(t, out, "INFO:")
}

func TestWriteSummaryCapsCriticalExamples(t *testing.T) {
	rep := compare.NewReport([]compare.Result{
		{Section: "services", Problems: 5, Changes: []string{
			"stopped: a.service",
			"stopped: b.service",
			"stopped: c.service",
			"stopped: d.service",
			"stopped: e.service",
		}},
	}, nil, nil, "test")

	var buf strings.Builder
	require.NoError(t, WriteSummary(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "stopped: c.service")
	assert.NotContains(t, out, "stopped: d.service")
	assert.Contains(t, out, "... and 2 more")
}

func TestWriteSummaryNilReport(t *testing.T) {
	var buf strings.Builder
	assert.Error(t, WriteSummary(&buf, nil))
}

func TestRebootWindow(t *testing.T) {
	tests := []struct {
		name string
		pre  string
		post string
		want time.Duration
		ok   bool
	}{
		{name: "normal window", pre: "20260115-031500", post: "20260115-032200", want: 7 * time.Minute, ok: true},
		{name: "unparseable pre", pre: "unknown", post: "20260115-032200"},
		{name: "unparseable post", pre: "20260115-031500", post: ""},
		{name: "out of order", pre: "20260115-032200", post: "20260115-031500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rebootWindow(tt.pre, tt.post)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
