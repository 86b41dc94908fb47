// Package error defines domain-specific errors for the LifeTrack application.
package error

import "errors"

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskPriority is returned when the priority is not low, medium or high.
	ErrInvalidTaskPriority = errors.New("invalid task priority")

	// ErrInvalidDueDate is returned when the due date is not a valid calendar date.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrUnauthorizedTaskAccess is returned when user is not authorized to access a task.
	ErrUnauthorizedTaskAccess = errors.New("unauthorized access to task")
)

// TaskErrorCode defines error codes for task errors.
// Format: TSK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	ErrCodeTaskNotFound           TaskErrorCode = "TSK-010001"
	ErrCodeInvalidTaskPriority    TaskErrorCode = "TSK-010002"
	ErrCodeInvalidDueDate         TaskErrorCode = "TSK-010003"
	ErrCodeUnauthorizedTaskAccess TaskErrorCode = "TSK-010004"
	ErrCodeMissingTaskFields      TaskErrorCode = "TSK-010005"
)

// TaskError represents a task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
