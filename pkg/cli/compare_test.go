// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshotFile(t *testing.T, dir, name string, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func baseSnapshot(typ, timestamp string) map[string]any {
	return map[string]any{
		"timestamp": timestamp,
		"type":      typ,
		"hostname":  "gateway",
		"services": map[string]any{
			"running": []string{"sshd.service", "dnsmasq.service"},
		},
		"system": map[string]any{
			"kernel":             "6.6.31",
			"disk_usage_percent": 42.0,
		},
	}
}

func TestCompareCommandCleanPair(t *testing.T) {
	dir := t.TempDir()
	pre := writeSnapshotFile(t, dir, "pre.json", baseSnapshot("pre-reboot", "20260115-031500"))
	post := writeSnapshotFile(t, dir, "post.json", baseSnapshot("post-reboot", "20260115-032200"))

	code := Run([]string{"rebootcheck", "compare",
		"--output", filepath.Join(dir, "summary.txt"), pre, post})
	assert.Equal(t, exitOK, code)

	out, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "PASSED")
}

func TestCompareCommandDetectsProblems(t *testing.T) {
	dir := t.TempDir()
	pre := writeSnapshotFile(t, dir, "pre.json", baseSnapshot("pre-reboot", "20260115-031500"))

	broken := baseSnapshot("post-reboot", "20260115-032200")
	broken["services"] = map[string]any{"running": []string{"sshd.service"}}
	post := writeSnapshotFile(t, dir, "post.json", broken)

	code := Run([]string{"rebootcheck", "compare",
		"--output", filepath.Join(dir, "summary.txt"), pre, post})
	assert.Equal(t, exitFailed, code)

	out, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "stopped: dnsmasq.service")
	assert.Contains(t, string(out), "FAILED")
}

func TestCompareCommandJSONReport(t *testing.T) {
	dir := t.TempDir()
	pre := writeSnapshotFile(t, dir, "pre.json", baseSnapshot("pre-reboot", "20260115-031500"))
	post := writeSnapshotFile(t, dir, "post.json", baseSnapshot("post-reboot", "20260115-032200"))
	reportPath := filepath.Join(dir, "report.json")

	code := Run([]string{"rebootcheck", "compare",
		"--format", "json", "--output", reportPath, pre, post})
	assert.Equal(t, exitOK, code)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, float64(0), rep["total_problems"])
	assert.Equal(t, true, rep["success"])
	assert.Equal(t, "20260115-031500", rep["pre_reboot_time"])
}

func TestCompareCommandAutoLatest(t *testing.T) {
	dir := t.TempDir()
	writeSnapshotFile(t, dir, "pre-reboot-20260115-031500.json", baseSnapshot("pre-reboot", "20260115-031500"))
	writeSnapshotFile(t, dir, "post-reboot-20260115-032200.json", baseSnapshot("post-reboot", "20260115-032200"))

	code := Run([]string{"rebootcheck", "compare",
		"--auto-latest", "--snapshot-dir", dir,
		"--output", filepath.Join(dir, "summary.txt")})
	assert.Equal(t, exitOK, code)
}

func TestCompareCommandUsageErrors(t *testing.T) {
	t.Run("missing arguments", func(t *testing.T) {
		code := Run([]string{"rebootcheck", "compare"})
		assert.Equal(t, exitUsage, code)
	})

	t.Run("nonexistent snapshot", func(t *testing.T) {
		code := Run([]string{"rebootcheck", "compare", "/does/not/exist.json", "/also/missing.json"})
		assert.Equal(t, exitUsage, code)
	})

	t.Run("unknown format", func(t *testing.T) {
		dir := t.TempDir()
		pre := writeSnapshotFile(t, dir, "pre.json", baseSnapshot("pre-reboot", "20260115-031500"))
		post := writeSnapshotFile(t, dir, "post.json", baseSnapshot("post-reboot", "20260115-032200"))

		code := Run([]string{"rebootcheck", "compare", "--format", "xml", pre, post})
		assert.Equal(t, exitUsage, code)
	})
}
