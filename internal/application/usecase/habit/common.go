// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// isValidHabitFrequency validates the habit frequency.
func isValidHabitFrequency(frequency entity.HabitFrequency) bool {
	return frequency == entity.HabitFrequencyDaily ||
		frequency == entity.HabitFrequencyWeekly
}

// findHabitForUser loads a habit and verifies ownership. Another user's
// habit is reported as not found, never as forbidden.
func findHabitForUser(ctx context.Context, repo adapter.HabitRepository, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.FindByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}
	if habit.UserID != userID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	return habit, nil
}
