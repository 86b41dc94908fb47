package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Finances is the aggregate root for a user's financial data. There is one
// logical record per user. Expenses, Savings and NetWorth are derived fields
// kept consistent by the ledger: they are recomputed synchronously after any
// mutation of a constituent record and never written directly by the user.
type Finances struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Savings       decimal.Decimal
	NetWorth      decimal.Decimal
	ReminderEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewFinances creates an empty Finances aggregate for the given user.
func NewFinances(userID uuid.UUID) *Finances {
	now := time.Now().UTC()

	return &Finances{
		ID:        uuid.New(),
		UserID:    userID,
		Income:    decimal.Zero,
		Expenses:  decimal.Zero,
		Savings:   decimal.Zero,
		NetWorth:  decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
