package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteFinancialGoalInput represents the input for financial goal deletion.
type DeleteFinancialGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteFinancialGoalUseCase handles financial goal deletion logic.
type DeleteFinancialGoalUseCase struct {
	financesRepo adapter.FinancesRepository
	goalRepo     adapter.FinancialGoalRepository
}

// NewDeleteFinancialGoalUseCase creates a new DeleteFinancialGoalUseCase instance.
func NewDeleteFinancialGoalUseCase(
	financesRepo adapter.FinancesRepository,
	goalRepo adapter.FinancialGoalRepository,
) *DeleteFinancialGoalUseCase {
	return &DeleteFinancialGoalUseCase{
		financesRepo: financesRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the financial goal deletion.
func (uc *DeleteFinancialGoalUseCase) Execute(ctx context.Context, input DeleteFinancialGoalInput) error {
	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return err
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFinancialGoalNotFound) {
			return domainerror.NewFinanceError(
				domainerror.ErrCodeFinancialGoalNotFound,
				"financial goal not found",
				domainerror.ErrFinancialGoalNotFound,
			)
		}
		return fmt.Errorf("failed to find financial goal: %w", err)
	}
	if goal.FinancesID != finances.ID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeFinancialGoalNotFound,
			"financial goal not found",
			domainerror.ErrFinancialGoalNotFound,
		)
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete financial goal: %w", err)
	}
	return nil
}
