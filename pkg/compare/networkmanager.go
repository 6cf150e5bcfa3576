// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// networkManagerComparator diffs active NetworkManager connection names.
// Connections activating late during boot is normal, so deactivations only
// warn and this section never raises problems.
type networkManagerComparator struct{}

func (networkManagerComparator) Name() string { return "networkmanager" }

func (c networkManagerComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	r := newResult(c.Name())

	preActive := connectionNames(pre.NetworkManager)
	postActive := connectionNames(post.NetworkManager)

	for _, conn := range sortedDiff(preActive, postActive) {
		r.warning(fmt.Sprintf("deactivated: %s", conn))
	}
	for _, conn := range sortedDiff(postActive, preActive) {
		r.info(fmt.Sprintf("activated: %s", conn))
	}

	return r
}

func connectionNames(nm *snapshot.NetworkManager) map[string]bool {
	if nm == nil {
		return nil
	}
	names := make(map[string]bool, len(nm.ActiveConnections))
	for _, conn := range nm.ActiveConnections {
		if conn.Name != "" {
			names[conn.Name] = true
		}
	}
	return names
}
