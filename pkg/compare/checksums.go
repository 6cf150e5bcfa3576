// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"sort"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// missingChecksum stands in for files that vanished between captures, so a
// disappearance still compares unequal to every real hash.
const missingChecksum = "missing"

// checksumComparator detects config files that changed during the reboot
// window. Changes are warnings, not problems: an operator may well have
// edited a config as part of the maintenance that triggered the reboot.
type checksumComparator struct{}

func (checksumComparator) Name() string { return "config_checksums" }

func (c checksumComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	files := make([]string, 0, len(pre.ConfigChecksums))
	for file := range pre.ConfigChecksums {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		preHash := pre.ConfigChecksums[file]
		postHash, exists := post.ConfigChecksums[file]
		if !exists {
			postHash = missingChecksum
		}
		if preHash != postHash {
			if verbose {
				r.warning(fmt.Sprintf("%s: Checksum changed (pre %s, post %s)", file, preHash, postHash))
			} else {
				r.warning(fmt.Sprintf("%s: Checksum changed", file))
			}
		}
	}

	return r
}
