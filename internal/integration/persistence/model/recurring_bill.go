package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// RecurringBillModel represents the recurring_bills table in the database.
type RecurringBillModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FinancesID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Frequency    string          `gorm:"type:varchar(10);not null;default:'monthly'"`
	CustomDays   int             `gorm:"not null;default:0"`
	NextDueDate  time.Time       `gorm:"type:date;not null;index"`
	LastPaidDate sql.NullTime    `gorm:"type:date"`
	ReminderDays int             `gorm:"not null;default:3"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringBillModel.
func (RecurringBillModel) TableName() string {
	return "recurring_bills"
}

// ToEntity converts a RecurringBillModel to a domain RecurringBill entity.
func (m *RecurringBillModel) ToEntity() *entity.RecurringBill {
	var lastPaid *time.Time
	if m.LastPaidDate.Valid {
		lastPaid = &m.LastPaidDate.Time
	}

	return &entity.RecurringBill{
		ID:           m.ID,
		FinancesID:   m.FinancesID,
		Name:         m.Name,
		Amount:       m.Amount,
		Frequency:    entity.BillFrequency(m.Frequency),
		CustomDays:   m.CustomDays,
		NextDueDate:  m.NextDueDate,
		LastPaidDate: lastPaid,
		ReminderDays: m.ReminderDays,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RecurringBillFromEntity creates a RecurringBillModel from a domain entity.
func RecurringBillFromEntity(bill *entity.RecurringBill) *RecurringBillModel {
	var lastPaid sql.NullTime
	if bill.LastPaidDate != nil {
		lastPaid = sql.NullTime{Time: *bill.LastPaidDate, Valid: true}
	}

	return &RecurringBillModel{
		ID:           bill.ID,
		FinancesID:   bill.FinancesID,
		Name:         bill.Name,
		Amount:       bill.Amount,
		Frequency:    string(bill.Frequency),
		CustomDays:   bill.CustomDays,
		NextDueDate:  bill.NextDueDate,
		LastPaidDate: lastPaid,
		ReminderDays: bill.ReminderDays,
		CreatedAt:    bill.CreatedAt,
		UpdatedAt:    bill.UpdatedAt,
	}
}
