package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// ExpenseCategoryModel represents the expense_categories table in the database.
type ExpenseCategoryModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FinancesID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Color      string          `gorm:"type:varchar(7)"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseCategoryModel.
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToEntity converts an ExpenseCategoryModel to a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) ToEntity() *entity.ExpenseCategory {
	return &entity.ExpenseCategory{
		ID:         m.ID,
		FinancesID: m.FinancesID,
		Name:       m.Name,
		Amount:     m.Amount,
		Color:      m.Color,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ExpenseCategoryFromEntity creates an ExpenseCategoryModel from a domain entity.
func ExpenseCategoryFromEntity(category *entity.ExpenseCategory) *ExpenseCategoryModel {
	return &ExpenseCategoryModel{
		ID:         category.ID,
		FinancesID: category.FinancesID,
		Name:       category.Name,
		Amount:     category.Amount,
		Color:      category.Color,
		CreatedAt:  category.CreatedAt,
		UpdatedAt:  category.UpdatedAt,
	}
}
