package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// UpdateFinancesInput represents the input for updating the writable fields
// of the finances aggregate. Derived fields are never written here.
type UpdateFinancesInput struct {
	UserID        uuid.UUID
	Income        *decimal.Decimal // Optional
	ReminderEmail *string          // Optional
}

// UpdateFinancesOutput represents the output of the aggregate update.
type UpdateFinancesOutput struct {
	Finances *entity.Finances
}

// UpdateFinancesUseCase handles updates to income and the reminder email.
type UpdateFinancesUseCase struct {
	financesRepo adapter.FinancesRepository
	ledger       *Ledger
}

// NewUpdateFinancesUseCase creates a new UpdateFinancesUseCase instance.
func NewUpdateFinancesUseCase(financesRepo adapter.FinancesRepository, ledger *Ledger) *UpdateFinancesUseCase {
	return &UpdateFinancesUseCase{
		financesRepo: financesRepo,
		ledger:       ledger,
	}
}

// Execute performs the aggregate update. Setting income triggers a savings
// recomputation before the call returns.
func (uc *UpdateFinancesUseCase) Execute(ctx context.Context, input UpdateFinancesInput) (*UpdateFinancesOutput, error) {
	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	incomeChanged := false
	if input.Income != nil {
		if err := validateNonNegative(*input.Income, "income"); err != nil {
			return nil, err
		}
		finances.Income = *input.Income
		incomeChanged = true
	}

	if input.ReminderEmail != nil {
		finances.ReminderEmail = *input.ReminderEmail
	}

	finances.UpdatedAt = time.Now().UTC()

	if err := uc.financesRepo.Update(ctx, finances); err != nil {
		return nil, fmt.Errorf("failed to update finances: %w", err)
	}

	if incomeChanged {
		if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindIncome); err != nil {
			return nil, err
		}
		// Re-read so the response carries the recomputed savings.
		finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload finances: %w", err)
		}
	}

	return &UpdateFinancesOutput{
		Finances: finances,
	}, nil
}
