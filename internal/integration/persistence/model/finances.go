package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// FinancesModel represents the finances table in the database. One row per
// user; expenses, savings and net_worth are derived columns written only by
// the ledger.
type FinancesModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Income        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Expenses      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Savings       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	NetWorth      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ReminderEmail string          `gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FinancesModel.
func (FinancesModel) TableName() string {
	return "finances"
}

// ToEntity converts a FinancesModel to a domain Finances entity.
func (m *FinancesModel) ToEntity() *entity.Finances {
	return &entity.Finances{
		ID:            m.ID,
		UserID:        m.UserID,
		Income:        m.Income,
		Expenses:      m.Expenses,
		Savings:       m.Savings,
		NetWorth:      m.NetWorth,
		ReminderEmail: m.ReminderEmail,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FinancesFromEntity creates a FinancesModel from a domain Finances entity.
func FinancesFromEntity(finances *entity.Finances) *FinancesModel {
	return &FinancesModel{
		ID:            finances.ID,
		UserID:        finances.UserID,
		Income:        finances.Income,
		Expenses:      finances.Expenses,
		Savings:       finances.Savings,
		NetWorth:      finances.NetWorth,
		ReminderEmail: finances.ReminderEmail,
		CreatedAt:     finances.CreatedAt,
		UpdatedAt:     finances.UpdatedAt,
	}
}
