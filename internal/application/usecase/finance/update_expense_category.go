package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateExpenseCategoryInput represents the input for expense category update.
type UpdateExpenseCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       *string          // Optional
	Amount     *decimal.Decimal // Optional
	Color      *string          // Optional
}

// UpdateExpenseCategoryOutput represents the output of expense category update.
type UpdateExpenseCategoryOutput struct {
	Category *entity.ExpenseCategory
	Finances *entity.Finances
}

// UpdateExpenseCategoryUseCase handles expense category update logic.
type UpdateExpenseCategoryUseCase struct {
	financesRepo adapter.FinancesRepository
	categoryRepo adapter.ExpenseCategoryRepository
	ledger       *Ledger
}

// NewUpdateExpenseCategoryUseCase creates a new UpdateExpenseCategoryUseCase instance.
func NewUpdateExpenseCategoryUseCase(
	financesRepo adapter.FinancesRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	ledger *Ledger,
) *UpdateExpenseCategoryUseCase {
	return &UpdateExpenseCategoryUseCase{
		financesRepo: financesRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
	}
}

// Execute performs the expense category update and recomputes the
// aggregate's expenses before returning.
func (uc *UpdateExpenseCategoryUseCase) Execute(ctx context.Context, input UpdateExpenseCategoryInput) (*UpdateExpenseCategoryOutput, error) {
	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseCategoryNotFound) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeExpenseCategoryNotFound,
				"expense category not found",
				domainerror.ErrExpenseCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense category: %w", err)
	}

	// A category from someone else's aggregate is reported as not found.
	if category.FinancesID != finances.ID {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"expense category not found",
			domainerror.ErrExpenseCategoryNotFound,
		)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Amount != nil {
		if err := validateNonNegative(*input.Amount, "amount"); err != nil {
			return nil, err
		}
		category.Amount = *input.Amount
	}
	if input.Color != nil {
		category.Color = *input.Color
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update expense category: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindExpenseCategory); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &UpdateExpenseCategoryOutput{
		Category: category,
		Finances: finances,
	}, nil
}
