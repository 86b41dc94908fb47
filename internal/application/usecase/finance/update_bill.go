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

// UpdateBillInput represents the input for recurring bill update.
type UpdateBillInput struct {
	UserID       uuid.UUID
	BillID       uuid.UUID
	Name         *string               // Optional
	Amount       *decimal.Decimal      // Optional
	Frequency    *entity.BillFrequency // Optional
	CustomDays   *int                  // Optional
	NextDueDate  *time.Time            // Optional
	ReminderDays *int                  // Optional
}

// UpdateBillOutput represents the output of recurring bill update.
type UpdateBillOutput struct {
	Bill *entity.RecurringBill
}

// UpdateBillUseCase handles recurring bill update logic.
type UpdateBillUseCase struct {
	financesRepo adapter.FinancesRepository
	billRepo     adapter.RecurringBillRepository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(
	financesRepo adapter.FinancesRepository,
	billRepo adapter.RecurringBillRepository,
) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		financesRepo: financesRepo,
		billRepo:     billRepo,
	}
}

// Execute performs the recurring bill update.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	_, bill, err := findBillForUser(ctx, uc.financesRepo, uc.billRepo, input.UserID, input.BillID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		bill.Name = *input.Name
	}
	if input.Amount != nil {
		if err := validateNonNegative(*input.Amount, "amount"); err != nil {
			return nil, err
		}
		bill.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !isValidBillFrequency(*input.Frequency) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidBillFrequency,
				"invalid bill frequency",
				domainerror.ErrInvalidBillFrequency,
			)
		}
		bill.Frequency = *input.Frequency
	}
	if input.CustomDays != nil {
		bill.CustomDays = *input.CustomDays
	}
	if input.NextDueDate != nil {
		bill.NextDueDate = *input.NextDueDate
	}
	if input.ReminderDays != nil {
		if *input.ReminderDays < 0 {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeMissingFinanceFields,
				"reminder days must not be negative",
				nil,
			)
		}
		bill.ReminderDays = *input.ReminderDays
	}

	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update recurring bill: %w", err)
	}

	return &UpdateBillOutput{
		Bill: bill,
	}, nil
}
