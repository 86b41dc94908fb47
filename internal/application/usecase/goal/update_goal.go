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

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	UserID          uuid.UUID
	GoalID          uuid.UUID
	Title           *string             // Optional
	Description     *string             // Optional
	TargetDate      *string             // Optional
	Category        *string             // Optional
	Milestones      *[]entity.Milestone // Optional, replaces the whole list
	TaskIDs         *[]uuid.UUID        // Optional, replaces the whole list
	HabitIDs        *[]uuid.UUID        // Optional, replaces the whole list
	FinancialGoalID **uuid.UUID         // Optional, nil inner pointer clears the link
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Replacing the milestone list
// recomputes progress in the same write.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findGoalForUser(ctx, uc.goalRepo, input.UserID, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"title is required",
				nil,
			)
		}
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetDate != nil {
		if err := validateTargetDate(*input.TargetDate); err != nil {
			return nil, err
		}
		goal.TargetDate = *input.TargetDate
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.Milestones != nil {
		goal.Milestones = normalizeMilestones(*input.Milestones)
		goal.Progress = ComputeProgress(goal.Milestones)
	}
	if input.TaskIDs != nil {
		goal.TaskIDs = *input.TaskIDs
	}
	if input.HabitIDs != nil {
		goal.HabitIDs = *input.HabitIDs
	}
	if input.FinancialGoalID != nil {
		goal.FinancialGoalID = *input.FinancialGoalID
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
