package goal

import (
	"testing"

	"github.com/lifetrack/backend/internal/domain/entity"
)

func milestones(completed ...bool) []entity.Milestone {
	ms := make([]entity.Milestone, len(completed))
	for i, c := range completed {
		ms[i] = entity.Milestone{ID: i + 1, Text: "step", Completed: c}
	}
	return ms
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name       string
		milestones []entity.Milestone
		want       int
	}{
		{"no milestones", nil, 0},
		{"empty list", []entity.Milestone{}, 0},
		{"none completed", milestones(false, false, false), 0},
		{"all completed", milestones(true, true, true), 100},
		{"half of four", milestones(true, true, false, false), 50},
		{"one of three rounds down", milestones(true, false, false), 33},
		{"two of three rounds up", milestones(true, true, false), 67},
		{"one of eight rounds half up", milestones(true, false, false, false, false, false, false, false), 13},
		{"single completed", milestones(true), 100},
		{"single uncompleted", milestones(false), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeProgress(tt.milestones); got != tt.want {
				t.Errorf("ComputeProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeProgress_ToggleStepSize(t *testing.T) {
	// Toggling one milestone on a four-milestone goal moves progress by
	// exactly 25 points.
	ms := milestones(false, false, false, false)
	prev := ComputeProgress(ms)
	for i := range ms {
		ms[i].Completed = true
		got := ComputeProgress(ms)
		if got-prev != 25 {
			t.Fatalf("toggle %d: progress moved %d, want 25", i+1, got-prev)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("all completed: progress = %d, want 100", prev)
	}
}
