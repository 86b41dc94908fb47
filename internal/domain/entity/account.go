package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeRetirement AccountType = "retirement"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeOther      AccountType = "other"
)

// FinancialAccount is a bank or credit account owned by a Finances aggregate.
// Accounts with IncludeInNetWorth set contribute their balance to the derived
// NetWorth field.
type FinancialAccount struct {
	ID                uuid.UUID
	FinancesID        uuid.UUID
	Name              string
	Type              AccountType
	Balance           decimal.Decimal
	InterestRate      decimal.Decimal
	IncludeInNetWorth bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewFinancialAccount creates a new FinancialAccount entity.
func NewFinancialAccount(financesID uuid.UUID, name string, accountType AccountType, balance, interestRate decimal.Decimal, includeInNetWorth bool) *FinancialAccount {
	now := time.Now().UTC()

	return &FinancialAccount{
		ID:                uuid.New(),
		FinancesID:        financesID,
		Name:              name,
		Type:              accountType,
		Balance:           balance,
		InterestRate:      interestRate,
		IncludeInNetWorth: includeInNetWorth,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
