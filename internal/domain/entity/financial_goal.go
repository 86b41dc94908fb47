package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialGoalType classifies what a financial goal is saving towards.
type FinancialGoalType string

const (
	FinancialGoalEmergencyFund   FinancialGoalType = "emergency_fund"
	FinancialGoalRetirement      FinancialGoalType = "retirement"
	FinancialGoalHouseDownpaymnt FinancialGoalType = "house_downpayment"
	FinancialGoalCar             FinancialGoalType = "car"
	FinancialGoalEducation       FinancialGoalType = "education"
	FinancialGoalTravel          FinancialGoalType = "travel"
	FinancialGoalDebtPayoff      FinancialGoalType = "debt_payoff"
	FinancialGoalOther           FinancialGoalType = "other"
)

// FinancialGoal is a savings target owned by a Finances aggregate.
// CurrentAmount is user-updated directly; nothing is derived here.
type FinancialGoal struct {
	ID            uuid.UUID
	FinancesID    uuid.UUID
	Name          string
	Type          FinancialGoalType
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    string
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewFinancialGoal creates a new FinancialGoal entity.
func NewFinancialGoal(financesID uuid.UUID, name string, goalType FinancialGoalType, targetAmount, currentAmount decimal.Decimal, targetDate string) *FinancialGoal {
	now := time.Now().UTC()

	return &FinancialGoal{
		ID:            uuid.New(),
		FinancesID:    financesID,
		Name:          name,
		Type:          goalType,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Archived:      false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
