package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// AccountModel represents the financial_accounts table in the database.
type AccountModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FinancesID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Type              string          `gorm:"type:varchar(20);not null;default:'other'"`
	Balance           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	InterestRate      decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	IncludeInNetWorth bool            `gorm:"not null;default:true"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "financial_accounts"
}

// ToEntity converts an AccountModel to a domain FinancialAccount entity.
func (m *AccountModel) ToEntity() *entity.FinancialAccount {
	return &entity.FinancialAccount{
		ID:                m.ID,
		FinancesID:        m.FinancesID,
		Name:              m.Name,
		Type:              entity.AccountType(m.Type),
		Balance:           m.Balance,
		InterestRate:      m.InterestRate,
		IncludeInNetWorth: m.IncludeInNetWorth,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain entity.
func AccountFromEntity(account *entity.FinancialAccount) *AccountModel {
	return &AccountModel{
		ID:                account.ID,
		FinancesID:        account.FinancesID,
		Name:              account.Name,
		Type:              string(account.Type),
		Balance:           account.Balance,
		InterestRate:      account.InterestRate,
		IncludeInNetWorth: account.IncludeInNetWorth,
		CreatedAt:         account.CreatedAt,
		UpdatedAt:         account.UpdatedAt,
	}
}
