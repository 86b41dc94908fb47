// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID          uuid.UUID
	Title           string
	Description     string
	TargetDate      string
	Category        string
	Milestones      []entity.Milestone
	TaskIDs         []uuid.UUID
	HabitIDs        []uuid.UUID
	FinancialGoalID *uuid.UUID
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation. Progress is derived from the milestone
// list; any client-supplied progress value is ignored.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"title is required",
			nil,
		)
	}
	if err := validateTargetDate(input.TargetDate); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Title,
		input.Description,
		input.TargetDate,
		normalizeMilestones(input.Milestones),
	)
	goal.Category = input.Category
	if input.TaskIDs != nil {
		goal.TaskIDs = input.TaskIDs
	}
	if input.HabitIDs != nil {
		goal.HabitIDs = input.HabitIDs
	}
	goal.FinancialGoalID = input.FinancialGoalID
	goal.Progress = ComputeProgress(goal.Milestones)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
