package error

import "errors"

// Request scoping errors.
var (
	// ErrMissingUserID is returned when a request carries no user identifier.
	ErrMissingUserID = errors.New("user id is required")

	// ErrInvalidUserID is returned when the user identifier is not a valid UUID.
	ErrInvalidUserID = errors.New("invalid user id")
)

// RequestErrorCode defines error codes for request scoping errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// User scoping errors (01XXXX)
	ErrCodeMissingUserID RequestErrorCode = "REQ-010001"
	ErrCodeInvalidUserID RequestErrorCode = "REQ-010002"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"
)
