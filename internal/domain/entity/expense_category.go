package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is a named monthly expense bucket owned by a Finances
// aggregate. The sum of all category amounts for a Finances record equals
// its derived Expenses field.
type ExpenseCategory struct {
	ID         uuid.UUID
	FinancesID uuid.UUID
	Name       string
	Amount     decimal.Decimal
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewExpenseCategory creates a new ExpenseCategory entity.
func NewExpenseCategory(financesID uuid.UUID, name string, amount decimal.Decimal, color string) *ExpenseCategory {
	now := time.Now().UTC()

	return &ExpenseCategory{
		ID:         uuid.New(),
		FinancesID: financesID,
		Name:       name,
		Amount:     amount,
		Color:      color,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
