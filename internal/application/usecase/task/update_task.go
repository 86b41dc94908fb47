package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update.
type UpdateTaskInput struct {
	UserID      uuid.UUID
	TaskID      uuid.UUID
	Title       *string              // Optional
	Description *string              // Optional
	DueDate     *string              // Optional
	Priority    *entity.TaskPriority // Optional
	Completed   *bool                // Optional
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic, including completion toggling.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := findTaskForUser(ctx, uc.taskRepo, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeMissingTaskFields,
				"title is required",
				nil,
			)
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		if err := validateDueDate(*input.DueDate); err != nil {
			return nil, err
		}
		task.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		if !isValidTaskPriority(*input.Priority) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskPriority,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidTaskPriority,
			)
		}
		task.Priority = *input.Priority
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{
		Task: task,
	}, nil
}
