package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// ToggleMilestoneInput represents the input for toggling a milestone.
type ToggleMilestoneInput struct {
	UserID      uuid.UUID
	GoalID      uuid.UUID
	MilestoneID int
}

// ToggleMilestoneOutput represents the output of toggling a milestone.
type ToggleMilestoneOutput struct {
	Goal *entity.Goal
}

// ToggleMilestoneUseCase flips a milestone's completion flag and recomputes
// the goal's progress in the same write.
type ToggleMilestoneUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewToggleMilestoneUseCase creates a new ToggleMilestoneUseCase instance.
func NewToggleMilestoneUseCase(goalRepo adapter.GoalRepository) *ToggleMilestoneUseCase {
	return &ToggleMilestoneUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleMilestoneUseCase) Execute(ctx context.Context, input ToggleMilestoneInput) (*ToggleMilestoneOutput, error) {
	goal, err := findGoalForUser(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	idx := goal.FindMilestone(input.MilestoneID)
	if idx < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMilestoneNotFound,
			"milestone not found",
			domainerror.ErrMilestoneNotFound,
		)
	}

	goal.Milestones[idx].Completed = !goal.Milestones[idx].Completed
	goal.Progress = ComputeProgress(goal.Milestones)
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &ToggleMilestoneOutput{
		Goal: goal,
	}, nil
}
