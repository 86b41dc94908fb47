package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	InvestmentTypeStocks         InvestmentType = "stocks"
	InvestmentTypeBonds          InvestmentType = "bonds"
	InvestmentTypeMutualFunds    InvestmentType = "mutual_funds"
	InvestmentTypeETFs           InvestmentType = "etfs"
	InvestmentTypeRealEstate     InvestmentType = "real_estate"
	InvestmentTypeCryptocurrency InvestmentType = "cryptocurrency"
	InvestmentTypeOther          InvestmentType = "other"
)

// Investment is a holding owned by a Finances aggregate. Every investment's
// current value contributes to the derived NetWorth field.
type Investment struct {
	ID            uuid.UUID
	FinancesID    uuid.UUID
	Name          string
	Type          InvestmentType
	Value         decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(financesID uuid.UUID, name string, investmentType InvestmentType, value, purchasePrice decimal.Decimal, purchaseDate time.Time) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:            uuid.New(),
		FinancesID:    financesID,
		Name:          name,
		Type:          investmentType,
		Value:         value,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchaseDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
