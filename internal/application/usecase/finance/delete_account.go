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

// DeleteAccountInput represents the input for financial account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of financial account deletion.
type DeleteAccountOutput struct {
	Finances *entity.Finances
}

// DeleteAccountUseCase handles financial account deletion logic.
type DeleteAccountUseCase struct {
	financesRepo adapter.FinancesRepository
	accountRepo  adapter.AccountRepository
	ledger       *Ledger
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	financesRepo adapter.FinancesRepository,
	accountRepo adapter.AccountRepository,
	ledger *Ledger,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		financesRepo: financesRepo,
		accountRepo:  accountRepo,
		ledger:       ledger,
	}
}

// Execute performs the account deletion and recomputes net worth before
// returning.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
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

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	if err := uc.ledger.OnConstituentChanged(ctx, finances.ID, KindAccount); err != nil {
		return nil, err
	}

	finances, err = uc.financesRepo.FindByID(ctx, finances.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload finances: %w", err)
	}

	return &DeleteAccountOutput{
		Finances: finances,
	}, nil
}
