// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/fidpa/rebootcheck/pkg/serializer"
)

// defaultSnapshotDir is where captures land unless SNAPSHOT_DIR overrides it.
const defaultSnapshotDir = "/var/log/snapshots"

// formatText selects the human-readable summary instead of a serialized
// report document.
const formatText = "text"

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   "Output format: text, json, yaml, or table",
	Value:   formatText,
}

var snapshotDirFlag = &cli.StringFlag{
	Name:    "snapshot-dir",
	Usage:   "Directory containing snapshot files",
	Sources: cli.EnvVars("SNAPSHOT_DIR"),
	Value:   defaultSnapshotDir,
}

// parseReportFormat validates the compare output format. Empty means text.
func parseReportFormat(value string) (serializer.Format, bool, error) {
	if value == "" || value == formatText {
		return "", true, nil
	}
	format := serializer.Format(value)
	if format.IsUnknown() {
		return "", false, fmt.Errorf("unknown output format: %q", value)
	}
	return format, false, nil
}

// FindLatestSnapshots locates the newest pre-reboot and post-reboot snapshot
// files in dir. Timestamped names sort lexicographically, so the newest file
// is the largest name.
func FindLatestSnapshots(dir string) (pre, post string, err error) {
	pre, err = latestMatch(dir, "pre-reboot-*")
	if err != nil {
		return "", "", err
	}
	post, err = latestMatch(dir, "post-reboot-*")
	if err != nil {
		return "", "", err
	}
	return pre, post, nil
}

func latestMatch(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no %s snapshot found in %s", pattern, dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
