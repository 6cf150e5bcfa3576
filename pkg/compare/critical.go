// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"sort"

	"github.com/fidpa/rebootcheck/pkg/snapshot"
)

// serviceStateActive is the systemd ActiveState literal expected of every
// critical service.
const serviceStateActive = "active"

// criticalServicesComparator checks each service in the post snapshot's
// critical-service map for active state and restart count increases.
type criticalServicesComparator struct{}

func (criticalServicesComparator) Name() string { return "critical_services" }

func (c criticalServicesComparator) Compare(pre, post *snapshot.Snapshot, verbose bool) Result {
	if len(pre.CriticalServices) == 0 && len(post.CriticalServices) == 0 {
		return skipResult(c.Name(), "No critical services data", verbose)
	}

	r := newResult(c.Name())

	names := make([]string, 0, len(post.CriticalServices))
	for name := range post.CriticalServices {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		postSvc := post.CriticalServices[name]
		if postSvc.Active != serviceStateActive {
			r.problem(fmt.Sprintf("%s: Not active (state: %s)", name, postSvc.Active))
		}

		preSvc := pre.CriticalServices[name]
		if postSvc.Restarts > preSvc.Restarts {
			r.warning(fmt.Sprintf("%s: Restarted %d times during reboot",
				name, postSvc.Restarts-preSvc.Restarts))
		}
	}

	return r
}
