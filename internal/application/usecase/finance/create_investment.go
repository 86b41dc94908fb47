package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID        uuid.UUID
	Name          string
	Type          entity.InvestmentType
	Value         decimal.Decimal
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
	Finances   *entity.Finances
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	financesRepo   adapter.FinancesRepository
	investmentRepo adapter.InvestmentRepository
	ledger         *Ledger
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(
	financesRepo adapter.FinancesRepository,
	investmentRepo adapter.InvestmentRepository,
	ledger *Ledger,
) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		financesRepo:   financesRepo,
		investmentRepo: investmentRepo,
		ledger:         ledger,
	}
}

// Execute performs the investment creation and recomputes net worth before
// returning.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if !isValidInvestmentType(input.Type) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidInvestmentType,
			"invalid investment type",
			domainerror.ErrInvalidInvestmentType,
		)
	}
	if err := validateNonNegative(input.Value, "value"); err != nil {
		return nil, err
	}
	if err := validateNonNegative(input.PurchasePrice, "purchase price"); err != nil {
		return nil, err
	}

	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	investment := entity.NewInvestment(
		finances.ID,
		input.Name,
		input.Type,
		input.Value,
		input.PurchasePrice,
		input.PurchaseDate,
	)

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindInvestment); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &CreateInvestmentOutput{
		Investment: investment,
		Finances:   finances,
	}, nil
}
