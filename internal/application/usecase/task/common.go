package task

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

// dateLayout is the wire format for task due dates.
const dateLayout = "2006-01-02"

// validateDueDate rejects due dates that are not in YYYY-MM-DD form. Empty
// is allowed; the calendar simply skips tasks without a parseable date.
func validateDueDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return domainerror.NewTaskError(
			domainerror.ErrCodeInvalidDueDate,
			"due date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDueDate,
		)
	}
	return nil
}

// findTaskForUser loads a task and verifies ownership. Another user's task
// is reported as not found, never as forbidden.
func findTaskForUser(ctx context.Context, repo adapter.TaskRepository, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task.UserID != userID {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}
	return task, nil
}
