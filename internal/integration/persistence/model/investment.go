package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FinancesID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(20);not null;default:'other'"`
	Value         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PurchaseDate  time.Time       `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:            m.ID,
		FinancesID:    m.FinancesID,
		Name:          m.Name,
		Type:          entity.InvestmentType(m.Type),
		Value:         m.Value,
		PurchasePrice: m.PurchasePrice,
		PurchaseDate:  m.PurchaseDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:            investment.ID,
		FinancesID:    investment.FinancesID,
		Name:          investment.Name,
		Type:          string(investment.Type),
		Value:         investment.Value,
		PurchasePrice: investment.PurchasePrice,
		PurchaseDate:  investment.PurchaseDate,
		CreatedAt:     investment.CreatedAt,
		UpdatedAt:     investment.UpdatedAt,
	}
}
