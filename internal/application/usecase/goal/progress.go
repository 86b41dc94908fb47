// Package goal contains goal-related use cases.
package goal

import "github.com/lifetrack/backend/internal/domain/entity"

// ComputeProgress derives a goal's progress percentage from its milestone
// list. An empty list yields 0; otherwise the completed ratio is rounded
// half-up to the nearest whole percent. Integer arithmetic throughout so
// repeated recomputation can never drift.
//
// Progress is never written by any other path: every milestone mutation and
// every milestone-list replacement must pass its result through here before
// the goal is persisted.
func ComputeProgress(milestones []entity.Milestone) int {
	total := len(milestones)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}

	// round-half-up of 100*completed/total
	return (200*completed + total) / (2 * total)
}
