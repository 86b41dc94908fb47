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

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
}

// DeleteInvestmentOutput represents the output of investment deletion.
type DeleteInvestmentOutput struct {
	Finances *entity.Finances
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	financesRepo   adapter.FinancesRepository
	investmentRepo adapter.InvestmentRepository
	ledger         *Ledger
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(
	financesRepo adapter.FinancesRepository,
	investmentRepo adapter.InvestmentRepository,
	ledger *Ledger,
) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		financesRepo:   financesRepo,
		investmentRepo: investmentRepo,
		ledger:         ledger,
	}
}

// Execute performs the investment deletion and recomputes net worth before
// returning.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvestmentNotFound,
				"investment not found",
				domainerror.ErrInvestmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}
	if investment.FinancesID != finances.ID {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvestmentNotFound,
			"investment not found",
			domainerror.ErrInvestmentNotFound,
		)
	}

	if err := uc.investmentRepo.Delete(ctx, investment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete investment: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindInvestment); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &DeleteInvestmentOutput{
		Finances: finances,
	}, nil
}
