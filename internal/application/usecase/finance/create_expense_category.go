package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateExpenseCategoryInput represents the input for expense category creation.
type CreateExpenseCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Amount decimal.Decimal
	Color  string
}

// CreateExpenseCategoryOutput represents the output of expense category creation.
type CreateExpenseCategoryOutput struct {
	Category *entity.ExpenseCategory
	Finances *entity.Finances
}

// CreateExpenseCategoryUseCase handles expense category creation logic.
type CreateExpenseCategoryUseCase struct {
	financesRepo adapter.FinancesRepository
	categoryRepo adapter.ExpenseCategoryRepository
	ledger       *Ledger
}

// NewCreateExpenseCategoryUseCase creates a new CreateExpenseCategoryUseCase instance.
func NewCreateExpenseCategoryUseCase(
	financesRepo adapter.FinancesRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	ledger *Ledger,
) *CreateExpenseCategoryUseCase {
	return &CreateExpenseCategoryUseCase{
		financesRepo: financesRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
	}
}

// Execute performs the expense category creation and recomputes the
// aggregate's expenses before returning.
func (uc *CreateExpenseCategoryUseCase) Execute(ctx context.Context, input CreateExpenseCategoryInput) (*CreateExpenseCategoryOutput, error) {
	if err := validateNonNegative(input.Amount, "amount"); err != nil {
		return nil, err
	}

	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	category := entity.NewExpenseCategory(finances.ID, input.Name, input.Amount, input.Color)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create expense category: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindExpenseCategory); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &CreateExpenseCategoryOutput{
		Category: category,
		Finances: finances,
	}, nil
}
