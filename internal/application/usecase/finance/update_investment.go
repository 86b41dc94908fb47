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

// UpdateInvestmentInput represents the input for investment update.
type UpdateInvestmentInput struct {
	UserID        uuid.UUID
	InvestmentID  uuid.UUID
	Name          *string                // Optional
	Type          *entity.InvestmentType // Optional
	Value         *decimal.Decimal       // Optional
	PurchasePrice *decimal.Decimal       // Optional
	PurchaseDate  *time.Time             // Optional
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
	Finances   *entity.Finances
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	financesRepo   adapter.FinancesRepository
	investmentRepo adapter.InvestmentRepository
	ledger         *Ledger
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(
	financesRepo adapter.FinancesRepository,
	investmentRepo adapter.InvestmentRepository,
	ledger *Ledger,
) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		financesRepo:   financesRepo,
		investmentRepo: investmentRepo,
		ledger:         ledger,
	}
}

// Execute performs the investment update and recomputes net worth before
// returning.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
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

	if input.Name != nil {
		investment.Name = *input.Name
	}
	if input.Type != nil {
		if !isValidInvestmentType(*input.Type) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidInvestmentType,
				"invalid investment type",
				domainerror.ErrInvalidInvestmentType,
			)
		}
		investment.Type = *input.Type
	}
	if input.Value != nil {
		if err := validateNonNegative(*input.Value, "value"); err != nil {
			return nil, err
		}
		investment.Value = *input.Value
	}
	if input.PurchasePrice != nil {
		if err := validateNonNegative(*input.PurchasePrice, "purchase price"); err != nil {
			return nil, err
		}
		investment.PurchasePrice = *input.PurchasePrice
	}
	if input.PurchaseDate != nil {
		investment.PurchaseDate = *input.PurchaseDate
	}

	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindInvestment); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &UpdateInvestmentOutput{
		Investment: investment,
		Finances:   finances,
	}, nil
}
