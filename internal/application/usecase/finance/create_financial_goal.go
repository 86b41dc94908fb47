package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateFinancialGoalInput represents the input for financial goal creation.
type CreateFinancialGoalInput struct {
	UserID        uuid.UUID
	Name          string
	Type          entity.FinancialGoalType
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    string
}

// CreateFinancialGoalOutput represents the output of financial goal creation.
type CreateFinancialGoalOutput struct {
	Goal *entity.FinancialGoal
}

// CreateFinancialGoalUseCase handles financial goal creation logic.
type CreateFinancialGoalUseCase struct {
	financesRepo adapter.FinancesRepository
	goalRepo     adapter.FinancialGoalRepository
}

// NewCreateFinancialGoalUseCase creates a new CreateFinancialGoalUseCase instance.
func NewCreateFinancialGoalUseCase(
	financesRepo adapter.FinancesRepository,
	goalRepo adapter.FinancialGoalRepository,
) *CreateFinancialGoalUseCase {
	return &CreateFinancialGoalUseCase{
		financesRepo: financesRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the financial goal creation. Financial goals do not feed
// any derived aggregate field, so no recomputation is triggered.
func (uc *CreateFinancialGoalUseCase) Execute(ctx context.Context, input CreateFinancialGoalInput) (*CreateFinancialGoalOutput, error) {
	if !isValidFinancialGoalType(input.Type) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidFinancialGoalType,
			"invalid financial goal type",
			domainerror.ErrInvalidFinancialGoalType,
		)
	}
	if err := validateNonNegative(input.TargetAmount, "target amount"); err != nil {
		return nil, err
	}
	if err := validateNonNegative(input.CurrentAmount, "current amount"); err != nil {
		return nil, err
	}
	if err := validateDate(input.TargetDate, "target date"); err != nil {
		return nil, err
	}

	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	goal := entity.NewFinancialGoal(
		finances.ID,
		input.Name,
		input.Type,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create financial goal: %w", err)
	}

	return &CreateFinancialGoalOutput{
		Goal: goal,
	}, nil
}
