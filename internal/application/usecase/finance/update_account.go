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

// UpdateAccountInput represents the input for financial account update.
type UpdateAccountInput struct {
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Name              *string             // Optional
	Type              *entity.AccountType // Optional
	Balance           *decimal.Decimal    // Optional
	InterestRate      *decimal.Decimal    // Optional
	IncludeInNetWorth *bool               // Optional
}

// UpdateAccountOutput represents the output of financial account update.
type UpdateAccountOutput struct {
	Account  *entity.FinancialAccount
	Finances *entity.Finances
}

// UpdateAccountUseCase handles financial account update logic.
type UpdateAccountUseCase struct {
	financesRepo adapter.FinancesRepository
	accountRepo  adapter.AccountRepository
	ledger       *Ledger
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(
	financesRepo adapter.FinancesRepository,
	accountRepo adapter.AccountRepository,
	ledger *Ledger,
) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		financesRepo: financesRepo,
		accountRepo:  accountRepo,
		ledger:       ledger,
	}
}

// Execute performs the account update and recomputes net worth before
// returning.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	finances, err := findAggregateForUser(ctx, uc.financesRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeAccountNotFound,
				"financial account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.FinancesID != finances.ID {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeAccountNotFound,
			"financial account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Type != nil {
		if !isValidAccountType(*input.Type) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidAccountType,
				"invalid account type",
				domainerror.ErrInvalidAccountType,
			)
		}
		account.Type = *input.Type
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}
	if input.InterestRate != nil {
		if err := validateNonNegative(*input.InterestRate, "interest rate"); err != nil {
			return nil, err
		}
		account.InterestRate = *input.InterestRate
	}
	if input.IncludeInNetWorth != nil {
		account.IncludeInNetWorth = *input.IncludeInNetWorth
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindAccount); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &UpdateAccountOutput{
		Account:  account,
		Finances: finances,
	}, nil
}
