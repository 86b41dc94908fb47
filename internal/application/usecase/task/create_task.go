// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	DueDate     string
	Priority    *entity.TaskPriority // Optional, defaults to medium
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeMissingTaskFields,
			"title is required",
			nil,
		)
	}
	if err := validateDueDate(input.DueDate); err != nil {
		return nil, err
	}

	priority := entity.TaskPriorityMedium
	if input.Priority != nil {
		if !isValidTaskPriority(*input.Priority) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskPriority,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidTaskPriority,
			)
		}
		priority = *input.Priority
	}

	task := entity.NewTask(input.UserID, input.Title, input.Description, input.DueDate, priority)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{
		Task: task,
	}, nil
}

// isValidTaskPriority validates the task priority.
func isValidTaskPriority(priority entity.TaskPriority) bool {
	return priority == entity.TaskPriorityLow ||
		priority == entity.TaskPriorityMedium ||
		priority == entity.TaskPriorityHigh
}
