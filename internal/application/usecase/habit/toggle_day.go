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

// ToggleDayInput represents the input for toggling a habit's completed day.
// Weekday is 1-indexed: Sunday=1 .. Saturday=7.
type ToggleDayInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	Weekday int
}

// ToggleDayOutput represents the output of toggling a completed day.
type ToggleDayOutput struct {
	Habit *entity.Habit
}

// ToggleDayUseCase flips a weekday in the habit's completion record. For
// weekly habits the same list doubles as the recurrence schedule, so a
// toggle also changes which calendar days the habit appears on.
type ToggleDayUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewToggleDayUseCase creates a new ToggleDayUseCase instance.
func NewToggleDayUseCase(habitRepo adapter.HabitRepository) *ToggleDayUseCase {
	return &ToggleDayUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleDayUseCase) Execute(ctx context.Context, input ToggleDayInput) (*ToggleDayOutput, error) {
	if input.Weekday < 1 || input.Weekday > 7 {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidWeekday,
			"weekday must be between 1 (Sunday) and 7 (Saturday)",
			domainerror.ErrInvalidWeekday,
		)
	}

	habit, err := findHabitForUser(ctx, uc.habitRepo, input.UserID, input.HabitID)
	if err != nil {
		return nil, err
	}

	habit.ToggleDay(input.Weekday)
	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &ToggleDayOutput{
		Habit: habit,
	}, nil
}
