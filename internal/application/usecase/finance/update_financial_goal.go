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

// UpdateFinancialGoalInput represents the input for financial goal update.
type UpdateFinancialGoalInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	Name          *string                   // Optional
	Type          *entity.FinancialGoalType // Optional
	TargetAmount  *decimal.Decimal          // Optional
	CurrentAmount *decimal.Decimal          // Optional
	TargetDate    *string                   // Optional
	Archived      *bool                     // Optional
}

// UpdateFinancialGoalOutput represents the output of financial goal update.
type UpdateFinancialGoalOutput struct {
	Goal *entity.FinancialGoal
}

// UpdateFinancialGoalUseCase handles financial goal update logic.
type UpdateFinancialGoalUseCase struct {
	financesRepo adapter.FinancesRepository
	goalRepo     adapter.FinancialGoalRepository
}

// NewUpdateFinancialGoalUseCase creates a new UpdateFinancialGoalUseCase instance.
func NewUpdateFinancialGoalUseCase(
	financesRepo adapter.FinancesRepository,
	goalRepo adapter.FinancialGoalRepository,
) *UpdateFinancialGoalUseCase {
	return &UpdateFinancialGoalUseCase{
		financesRepo: financesRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the financial goal update.
func (uc *UpdateFinancialGoalUseCase) Execute(ctx context.Context, input UpdateFinancialGoalInput) (*UpdateFinancialGoalOutput, error) {
	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFinancialGoalNotFound) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeFinancialGoalNotFound,
				"financial goal not found",
				domainerror.ErrFinancialGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find financial goal: %w", err)
	}
	if goal.FinancesID != finances.ID {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeFinancialGoalNotFound,
			"financial goal not found",
			domainerror.ErrFinancialGoalNotFound,
		)
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.Type != nil {
		if !isValidFinancialGoalType(*input.Type) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidFinancialGoalType,
				"invalid financial goal type",
				domainerror.ErrInvalidFinancialGoalType,
			)
		}
		goal.Type = *input.Type
	}
	if input.TargetAmount != nil {
		if err := validateNonNegative(*input.TargetAmount, "target amount"); err != nil {
			return nil, err
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if err := validateNonNegative(*input.CurrentAmount, "current amount"); err != nil {
			return nil, err
		}
		goal.CurrentAmount = *input.CurrentAmount
	}
	if input.TargetDate != nil {
		if err := validateDate(*input.TargetDate, "target date"); err != nil {
			return nil, err
		}
		goal.TargetDate = *input.TargetDate
	}
	if input.Archived != nil {
		goal.Archived = *input.Archived
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update financial goal: %w", err)
	}

	return &UpdateFinancialGoalOutput{
		Goal: goal,
	}, nil
}
