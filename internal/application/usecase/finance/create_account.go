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

// CreateAccountInput represents the input for financial account creation.
// Balance may be negative: credit card and loan accounts carry debt.
type CreateAccountInput struct {
	UserID            uuid.UUID
	Name              string
	Type              entity.AccountType
	Balance           decimal.Decimal
	InterestRate      decimal.Decimal
	IncludeInNetWorth bool
}

// CreateAccountOutput represents the output of financial account creation.
type CreateAccountOutput struct {
	Account  *entity.FinancialAccount
	Finances *entity.Finances
}

// CreateAccountUseCase handles financial account creation logic.
type CreateAccountUseCase struct {
	financesRepo adapter.FinancesRepository
	accountRepo  adapter.AccountRepository
	ledger       *Ledger
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(
	financesRepo adapter.FinancesRepository,
	accountRepo adapter.AccountRepository,
	ledger *Ledger,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		financesRepo: financesRepo,
		accountRepo:  accountRepo,
		ledger:       ledger,
	}
}

// Execute performs the account creation and recomputes net worth before
// returning.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if !isValidAccountType(input.Type) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidAccountType,
			"invalid account type",
			domainerror.ErrInvalidAccountType,
		)
	}
	if err := validateNonNegative(input.InterestRate, "interest rate"); err != nil {
		return nil, err
	}

	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	account := entity.NewFinancialAccount(
		finances.ID,
		input.Name,
		input.Type,
		input.Balance,
		input.InterestRate,
		input.IncludeInNetWorth,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindAccount); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &CreateAccountOutput{
		Account:  account,
		Finances: finances,
	}, nil
}
