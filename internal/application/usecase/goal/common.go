package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// dateLayout is the wire format for goal target dates.
const dateLayout = "2006-01-02"

// validateTargetDate rejects target dates that are not in YYYY-MM-DD form.
// Empty is allowed; the calendar simply skips goals without a parseable date.
func validateTargetDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetDate,
			"target date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidTargetDate,
		)
	}
	return nil
}

// findGoalForUser loads a goal and verifies ownership. Another user's goal
// is reported as not found, never as forbidden.
func findGoalForUser(ctx context.Context, repo adapter.GoalRepository, userID, goalID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return goal, nil
}

// normalizeMilestones assigns ordinal ids to milestones that arrive without
// one and recounts duplicates. Ids stay stable across later edits.
func normalizeMilestones(milestones []entity.Milestone) []entity.Milestone {
	if milestones == nil {
		return []entity.Milestone{}
	}
	seen := map[int]bool{}
	next := 1
	out := make([]entity.Milestone, len(milestones))
	for i, m := range milestones {
		if m.ID <= 0 || seen[m.ID] {
			for seen[next] {
				next++
			}
			m.ID = next
		}
		seen[m.ID] = true
		out[i] = m
	}
	return out
}
