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

// GetFinancesInput represents the input for reading the finances aggregate.
type GetFinancesInput struct {
	UserID uuid.UUID
}

// GetFinancesOutput carries the aggregate and all its constituent collections.
type GetFinancesOutput struct {
	Finances       *entity.Finances
	Categories     []*entity.ExpenseCategory
	FinancialGoals []*entity.FinancialGoal
	Accounts       []*entity.FinancialAccount
	Investments    []*entity.Investment
	Bills          []*entity.RecurringBill
}

// GetFinancesUseCase handles reading the finances aggregate. A user who has
// never touched finances gets an empty aggregate created on first read, so
// the endpoint never 404s for an authenticated user.
type GetFinancesUseCase struct {
	financesRepo   adapter.FinancesRepository
	categoryRepo   adapter.ExpenseCategoryRepository
	goalRepo       adapter.FinancialGoalRepository
	accountRepo    adapter.AccountRepository
	investmentRepo adapter.InvestmentRepository
	billRepo       adapter.RecurringBillRepository
}

// NewGetFinancesUseCase creates a new GetFinancesUseCase instance.
func NewGetFinancesUseCase(
	financesRepo adapter.FinancesRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	goalRepo adapter.FinancialGoalRepository,
	accountRepo adapter.AccountRepository,
	investmentRepo adapter.InvestmentRepository,
	billRepo adapter.RecurringBillRepository,
) *GetFinancesUseCase {
	return &GetFinancesUseCase{
		financesRepo:   financesRepo,
		categoryRepo:   categoryRepo,
		goalRepo:       goalRepo,
		accountRepo:    accountRepo,
		investmentRepo: investmentRepo,
		billRepo:       billRepo,
	}
}

// Execute performs the read, creating the aggregate if necessary.
func (uc *GetFinancesUseCase) Execute(ctx context.Context, input GetFinancesInput) (*GetFinancesOutput, error) {
	finances, err := uc.financesRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrFinancesNotFound) {
			return nil, fmt.Errorf("failed to find finances: %w", err)
		}

		finances = entity.NewFinances(input.UserID)
		if err := uc.financesRepo.Create(ctx, finances); err != nil {
			return nil, fmt.Errorf("failed to create finances: %w", err)
		}
	}

	categories, err := uc.categoryRepo.FindByFinancesID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense categories: %w", err)
	}
	goals, err := uc.goalRepo.FindByFinancesID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial goals: %w", err)
	}
	accounts, err := uc.accountRepo.FindByFinancesID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	investments, err := uc.investmentRepo.FindByFinancesID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	bills, err := uc.billRepo.FindByFinancesID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring bills: %w", err)
	}

	return &GetFinancesOutput{
		Finances:       finances,
		Categories:     categories,
		FinancialGoals: goals,
		Accounts:       accounts,
		Investments:    investments,
		Bills:          bills,
	}, nil
}
