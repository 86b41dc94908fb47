package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// SnoozeBillInput represents the input for snoozing a recurring bill.
type SnoozeBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// SnoozeBillOutput represents the output of snoozing a bill.
type SnoozeBillOutput struct {
	Bill *entity.RecurringBill
}

// SnoozeBillUseCase pushes a bill's next due date back by seven days.
type SnoozeBillUseCase struct {
	financesRepo adapter.FinancesRepository
	billRepo     adapter.RecurringBillRepository
}

// NewSnoozeBillUseCase creates a new SnoozeBillUseCase instance.
func NewSnoozeBillUseCase(
	financesRepo adapter.FinancesRepository,
	billRepo adapter.RecurringBillRepository,
) *SnoozeBillUseCase {
	return &SnoozeBillUseCase{
		financesRepo: financesRepo,
		billRepo:     billRepo,
	}
}

// Execute performs the snooze.
func (uc *SnoozeBillUseCase) Execute(ctx context.Context, input SnoozeBillInput) (*SnoozeBillOutput, error) {
	_, bill, err := findBillForUser(ctx, uc.financesRepo, uc.billRepo, input.UserID, input.BillID)
	if err != nil {
		return nil, err
	}

	bill.Snooze()
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update recurring bill: %w", err)
	}

	return &SnoozeBillOutput{
		Bill: bill,
	}, nil
}
