package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// DeleteBillInput represents the input for recurring bill deletion.
type DeleteBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// DeleteBillUseCase handles recurring bill deletion logic.
type DeleteBillUseCase struct {
	financesRepo adapter.FinancesRepository
	billRepo     adapter.RecurringBillRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(
	financesRepo adapter.FinancesRepository,
	billRepo adapter.RecurringBillRepository,
) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		financesRepo: financesRepo,
		billRepo:     billRepo,
	}
}

// Execute performs the recurring bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) error {
	_, bill, err := findBillForUser(ctx, uc.financesRepo, uc.billRepo, input.UserID, input.BillID)
	if err != nil {
		return err
	}

	if err := uc.billRepo.Delete(ctx, bill.ID); err != nil {
		return fmt.Errorf("failed to delete recurring bill: %w", err)
	}
	return nil
}
