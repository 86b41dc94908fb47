package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Frequency   entity.HabitFrequency
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"title is required",
			nil,
		)
	}
	if !isValidHabitFrequency(input.Frequency) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitFrequency,
			"frequency must be 'daily' or 'weekly'",
			domainerror.ErrInvalidHabitFrequency,
		)
	}

	habit := entity.NewHabit(input.UserID, input.Title, input.Description, input.Frequency)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}
