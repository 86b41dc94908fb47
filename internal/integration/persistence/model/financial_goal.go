package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// FinancialGoalModel represents the financial_goals table in the database.
type FinancialGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FinancesID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(30);not null;default:'other'"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate    string          `gorm:"type:varchar(10)"` // ISO date, stored as text
	Archived      bool            `gorm:"not null;default:false"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FinancialGoalModel.
func (FinancialGoalModel) TableName() string {
	return "financial_goals"
}

// ToEntity converts a FinancialGoalModel to a domain FinancialGoal entity.
func (m *FinancialGoalModel) ToEntity() *entity.FinancialGoal {
	return &entity.FinancialGoal{
		ID:            m.ID,
		FinancesID:    m.FinancesID,
		Name:          m.Name,
		Type:          entity.FinancialGoalType(m.Type),
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		Archived:      m.Archived,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FinancialGoalFromEntity creates a FinancialGoalModel from a domain entity.
func FinancialGoalFromEntity(goal *entity.FinancialGoal) *FinancialGoalModel {
	return &FinancialGoalModel{
		ID:            goal.ID,
		FinancesID:    goal.FinancesID,
		Name:          goal.Name,
		Type:          string(goal.Type),
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		Archived:      goal.Archived,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
