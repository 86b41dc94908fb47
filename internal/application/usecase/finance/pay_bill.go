package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// PayBillInput represents the input for marking a recurring bill as paid.
type PayBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// PayBillOutput represents the output of marking a bill as paid.
type PayBillOutput struct {
	Bill *entity.RecurringBill
}

// PayBillUseCase records a payment and advances the bill's next due date by
// one frequency period.
type PayBillUseCase struct {
	financesRepo adapter.FinancesRepository
	billRepo     adapter.RecurringBillRepository
	clock        adapter.Clock
}

// NewPayBillUseCase creates a new PayBillUseCase instance.
func NewPayBillUseCase(
	financesRepo adapter.FinancesRepository,
	billRepo adapter.RecurringBillRepository,
	clock adapter.Clock,
) *PayBillUseCase {
	return &PayBillUseCase{
		financesRepo: financesRepo,
		billRepo:     billRepo,
		clock:        clock,
	}
}

// Execute performs the payment.
func (uc *PayBillUseCase) Execute(ctx context.Context, input PayBillInput) (*PayBillOutput, error) {
	_, bill, err := findBillForUser(ctx, uc.financesRepo, uc.billRepo, input.UserID, input.BillID)
	if err != nil {
		return nil, err
	}

	bill.MarkPaid(uc.clock.Now())
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update recurring bill: %w", err)
	}

	return &PayBillOutput{
		Bill: bill,
	}, nil
}
