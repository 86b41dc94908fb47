package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit update.
type UpdateHabitInput struct {
	UserID      uuid.UUID
	HabitID     uuid.UUID
	Title       *string                // Optional
	Description *string                // Optional
	Frequency   *entity.HabitFrequency // Optional
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *entity.Habit
}

// UpdateHabitUseCase handles habit update logic.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit update. Changing frequency does not clear
// CompletedDays; the weekly schedule picks up whatever days are marked.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
	habit, err := findHabitForUser(ctx, uc.habitRepo, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeMissingHabitFields,
				"title is required",
				nil,
			)
		}
		habit.Title = *input.Title
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.Frequency != nil {
		if !isValidHabitFrequency(*input.Frequency) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitFrequency,
				"frequency must be 'daily' or 'weekly'",
				domainerror.ErrInvalidHabitFrequency,
			)
		}
		habit.Frequency = *input.Frequency
	}

	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{
		Habit: habit,
	}, nil
}
