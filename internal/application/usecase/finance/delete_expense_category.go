package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteExpenseCategoryInput represents the input for expense category deletion.
type DeleteExpenseCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteExpenseCategoryOutput represents the output of expense category deletion.
type DeleteExpenseCategoryOutput struct {
	Finances *entity.Finances
}

// DeleteExpenseCategoryUseCase handles expense category deletion logic.
type DeleteExpenseCategoryUseCase struct {
	financesRepo adapter.FinancesRepository
	categoryRepo adapter.ExpenseCategoryRepository
	ledger       *Ledger
}

// NewDeleteExpenseCategoryUseCase creates a new DeleteExpenseCategoryUseCase instance.
func NewDeleteExpenseCategoryUseCase(
	financesRepo adapter.FinancesRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	ledger *Ledger,
) *DeleteExpenseCategoryUseCase {
	return &DeleteExpenseCategoryUseCase{
		financesRepo: financesRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
	}
}

// Execute performs the expense category deletion and recomputes the
// aggregate's expenses before returning.
func (uc *DeleteExpenseCategoryUseCase) Execute(ctx context.Context, input DeleteExpenseCategoryInput) (*DeleteExpenseCategoryOutput, error) {
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
	if category.FinancesID != finances.ID {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeExpenseCategoryNotFound,
			"expense category not found",
			domainerror.ErrExpenseCategoryNotFound,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense category: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindExpenseCategory); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &DeleteExpenseCategoryOutput{
		Finances: finances,
	}, nil
}
