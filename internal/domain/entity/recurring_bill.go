package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillFrequency represents how often a recurring bill comes due.
type BillFrequency string

const (
	BillFrequencyWeekly    BillFrequency = "weekly"
	BillFrequencyBiweekly  BillFrequency = "biweekly"
	BillFrequencyMonthly   BillFrequency = "monthly"
	BillFrequencyQuarterly BillFrequency = "quarterly"
	BillFrequencyYearly    BillFrequency = "yearly"
	BillFrequencyCustom    BillFrequency = "custom"
)

// defaultCustomDays is the period used for custom-frequency bills that
// never had an explicit period set.
const defaultCustomDays = 30

// RecurringBill is a repeating payment owned by a Finances aggregate.
// Besides plain edits its only state transitions are MarkPaid and Snooze.
type RecurringBill struct {
	ID           uuid.UUID
	FinancesID   uuid.UUID
	Name         string
	Amount       decimal.Decimal
	Frequency    BillFrequency
	CustomDays   int
	NextDueDate  time.Time
	LastPaidDate *time.Time
	ReminderDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRecurringBill creates a new RecurringBill entity.
func NewRecurringBill(financesID uuid.UUID, name string, amount decimal.Decimal, frequency BillFrequency, customDays int, nextDueDate time.Time, reminderDays int) *RecurringBill {
	now := time.Now().UTC()

	return &RecurringBill{
		ID:           uuid.New(),
		FinancesID:   financesID,
		Name:         name,
		Amount:       amount,
		Frequency:    frequency,
		CustomDays:   customDays,
		NextDueDate:  nextDueDate,
		ReminderDays: reminderDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MarkPaid records a payment made at the given time and advances the next
// due date by one frequency period.
func (b *RecurringBill) MarkPaid(paidAt time.Time) {
	paid := paidAt.UTC()
	b.LastPaidDate = &paid
	b.NextDueDate = b.advance(b.NextDueDate)
}

// Snooze pushes the next due date back by seven days.
func (b *RecurringBill) Snooze() {
	b.NextDueDate = b.NextDueDate.AddDate(0, 0, 7)
}

// DueWithinReminder reports whether the bill is due within its reminder
// window as of the given date.
func (b *RecurringBill) DueWithinReminder(today time.Time) bool {
	remindFrom := b.NextDueDate.AddDate(0, 0, -b.ReminderDays)
	return !today.Before(remindFrom) && !today.After(b.NextDueDate)
}

// advance returns the date one frequency period after from.
func (b *RecurringBill) advance(from time.Time) time.Time {
	switch b.Frequency {
	case BillFrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case BillFrequencyBiweekly:
		return from.AddDate(0, 0, 14)
	case BillFrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case BillFrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case BillFrequencyYearly:
		return from.AddDate(1, 0, 0)
	case BillFrequencyCustom:
		days := b.CustomDays
		if days <= 0 {
			days = defaultCustomDays
		}
		return from.AddDate(0, 0, days)
	default:
		return from.AddDate(0, 1, 0)
	}
}
