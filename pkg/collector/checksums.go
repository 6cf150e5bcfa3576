// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// checksumMissing marks files that could not be read. The literal survives
// into the comparison so a vanished file still registers as a change.
const checksumMissing = "missing"

// ChecksumCollector hashes a fixed list of config files.
type ChecksumCollector struct {
	Files []string
}

// Name implements the Collector interface.
func (c *ChecksumCollector) Name() string { return "config_checksums" }

// Collect implements the Collector interface.
func (c *ChecksumCollector) Collect(ctx context.Context, snap *snapshot.Snapshot) error {
	if len(c.Files) == 0 {
		return nil
	}

	sums := make(map[string]string, len(c.Files))
	for _, file := range c.Files {
		sum, err := fileChecksum(file)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("hashing config file failed", "file", file, "error", err)
			}
			sum = checksumMissing
		}
		sums[file] = sum
	}

	snap.ConfigChecksums = sums
	return nil
}

func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
