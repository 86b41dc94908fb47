package error

import "errors"

// Finance domain errors.
var (
	// ErrFinancesNotFound is returned when a finances aggregate is not found.
	ErrFinancesNotFound = errors.New("finances not found")

	// ErrExpenseCategoryNotFound is returned when an expense category is not found.
	ErrExpenseCategoryNotFound = errors.New("expense category not found")

	// ErrFinancialGoalNotFound is returned when a financial goal is not found.
	ErrFinancialGoalNotFound = errors.New("financial goal not found")

	// ErrAccountNotFound is returned when a financial account is not found.
	ErrAccountNotFound = errors.New("financial account not found")

	// ErrInvestmentNotFound is returned when an investment is not found.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrBillNotFound is returned when a recurring bill is not found.
	ErrBillNotFound = errors.New("recurring bill not found")

	// ErrInvalidAmount is returned when a monetary amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an amount that must be non-negative is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidFinancialGoalType is returned when the financial goal type is unknown.
	ErrInvalidFinancialGoalType = errors.New("invalid financial goal type")

	// ErrInvalidAccountType is returned when the account type is unknown.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidInvestmentType is returned when the investment type is unknown.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrInvalidBillFrequency is returned when the bill frequency is unknown.
	ErrInvalidBillFrequency = errors.New("invalid bill frequency")

	// ErrUnauthorizedFinancesAccess is returned when user is not authorized to access the aggregate.
	ErrUnauthorizedFinancesAccess = errors.New("unauthorized access to finances")
)

// FinanceErrorCode defines error codes for finance errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFinancesNotFound           FinanceErrorCode = "FIN-010001"
	ErrCodeExpenseCategoryNotFound    FinanceErrorCode = "FIN-010002"
	ErrCodeFinancialGoalNotFound      FinanceErrorCode = "FIN-010003"
	ErrCodeAccountNotFound            FinanceErrorCode = "FIN-010004"
	ErrCodeInvestmentNotFound         FinanceErrorCode = "FIN-010005"
	ErrCodeBillNotFound               FinanceErrorCode = "FIN-010006"
	ErrCodeInvalidAmount              FinanceErrorCode = "FIN-010007"
	ErrCodeInvalidFinancialGoalType   FinanceErrorCode = "FIN-010008"
	ErrCodeInvalidAccountType         FinanceErrorCode = "FIN-010009"
	ErrCodeInvalidInvestmentType      FinanceErrorCode = "FIN-010010"
	ErrCodeInvalidBillFrequency       FinanceErrorCode = "FIN-010011"
	ErrCodeMissingFinanceFields       FinanceErrorCode = "FIN-010012"
	ErrCodeUnauthorizedFinancesAccess FinanceErrorCode = "FIN-010013"

	// Internal errors (02XXXX). A recompute failure is a defect, never a
	// user-facing condition.
	ErrCodeLedgerRecomputeFailed FinanceErrorCode = "FIN-020001"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
