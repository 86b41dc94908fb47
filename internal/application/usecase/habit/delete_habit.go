package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// DeleteHabitUseCase handles habit deletion logic.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit deletion.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) error {
	habit, err := findHabitForUser(ctx, uc.habitRepo, input.UserID, input.HabitID)
	if err != nil {
		return err
	}

	if err := uc.habitRepo.Delete(ctx, habit.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}
