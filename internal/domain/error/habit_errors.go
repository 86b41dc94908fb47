package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrInvalidHabitFrequency is returned when the frequency is not daily or weekly.
	ErrInvalidHabitFrequency = errors.New("invalid habit frequency")

	// ErrInvalidWeekday is returned when a weekday index is outside 1-7.
	ErrInvalidWeekday = errors.New("weekday must be between 1 (Sunday) and 7 (Saturday)")

	// ErrUnauthorizedHabitAccess is returned when user is not authorized to access a habit.
	ErrUnauthorizedHabitAccess = errors.New("unauthorized access to habit")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HBT-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	ErrCodeHabitNotFound           HabitErrorCode = "HBT-010001"
	ErrCodeInvalidHabitFrequency   HabitErrorCode = "HBT-010002"
	ErrCodeInvalidWeekday          HabitErrorCode = "HBT-010003"
	ErrCodeUnauthorizedHabitAccess HabitErrorCode = "HBT-010004"
	ErrCodeMissingHabitFields      HabitErrorCode = "HBT-010005"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
