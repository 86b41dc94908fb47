package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateBillInput represents the input for recurring bill creation.
type CreateBillInput struct {
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	Frequency    entity.BillFrequency
	CustomDays   int // only meaningful for custom frequency
	NextDueDate  time.Time
	ReminderDays int
}

// CreateBillOutput represents the output of recurring bill creation.
type CreateBillOutput struct {
	Bill *entity.RecurringBill
}

// CreateBillUseCase handles recurring bill creation logic.
type CreateBillUseCase struct {
	financesRepo adapter.FinancesRepository
	billRepo     adapter.RecurringBillRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(
	financesRepo adapter.FinancesRepository,
	billRepo adapter.RecurringBillRepository,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		financesRepo: financesRepo,
		billRepo:     billRepo,
	}
}

// Execute performs the recurring bill creation. Bills do not feed any derived
// aggregate field, so no recomputation is triggered.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	if !isValidBillFrequency(input.Frequency) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidBillFrequency,
			"invalid bill frequency",
			domainerror.ErrInvalidBillFrequency,
		)
	}
	if err := validateNonNegative(input.Amount, "amount"); err != nil {
		return nil, err
	}
	if input.ReminderDays < 0 {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingFinanceFields,
			"reminder days must not be negative",
			nil,
		)
	}

	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	bill := entity.NewRecurringBill(
		finances.ID,
		input.Name,
		input.Amount,
		input.Frequency,
		input.CustomDays,
		input.NextDueDate,
		input.ReminderDays,
	)

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create recurring bill: %w", err)
	}

	return &CreateBillOutput{
		Bill: bill,
	}, nil
}
