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

// dateLayout is the wire format for finance date fields.
const dateLayout = "2006-01-02"

// findAggregateForUser loads the finances aggregate owned by the user.
func findAggregateForUser(ctx context.Context, repo adapter.FinancesRepository, userID uuid.UUID) (*entity.Finances, error) {
	finances, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFinancesNotFound) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeFinancesNotFound,
				"finances not found",
				domainerror.ErrFinancesNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find finances: %w", err)
	}
	return finances, nil
}

// findBillForUser loads a recurring bill and verifies it belongs to the
// user's aggregate. Bills from other aggregates are reported as not found.
func findBillForUser(ctx context.Context, financesRepo adapter.FinancesRepository, billRepo adapter.RecurringBillRepository, userID, billID uuid.UUID) (*entity.Finances, *entity.RecurringBill, error) {
	finances, err := findAggregateForUser(ctx, financesRepo, userID)
	if err != nil {
		return nil, nil, err
	}

	bill, err := billRepo.FindByID(ctx, billID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, nil, domainerror.NewFinanceError(
				domainerror.ErrCodeBillNotFound,
				"recurring bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, nil, fmt.Errorf("failed to find recurring bill: %w", err)
	}
	if bill.FinancesID != finances.ID {
		return nil, nil, domainerror.NewFinanceError(
			domainerror.ErrCodeBillNotFound,
			"recurring bill not found",
			domainerror.ErrBillNotFound,
		)
	}
	return finances, bill, nil
}

// validateNonNegative rejects negative monetary amounts.
func validateNonNegative(amount decimal.Decimal, field string) error {
	if amount.IsNegative() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidAmount,
			field+" must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}

// validateDate rejects target dates that are not in YYYY-MM-DD form. Empty
// is allowed; the calendar simply skips entities without a parseable date.
func validateDate(value, field string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeMissingFinanceFields,
			field+" must be in YYYY-MM-DD format",
			err,
		)
	}
	return nil
}

func isValidFinancialGoalType(t entity.FinancialGoalType) bool {
	switch t {
	case entity.FinancialGoalEmergencyFund,
		entity.FinancialGoalRetirement,
		entity.FinancialGoalHouseDownpaymnt,
		entity.FinancialGoalCar,
		entity.FinancialGoalEducation,
		entity.FinancialGoalTravel,
		entity.FinancialGoalDebtPayoff,
		entity.FinancialGoalOther:
		return true
	}
	return false
}

func isValidAccountType(t entity.AccountType) bool {
	switch t {
	case entity.AccountTypeChecking,
		entity.AccountTypeSavings,
		entity.AccountTypeInvestment,
		entity.AccountTypeRetirement,
		entity.AccountTypeCreditCard,
		entity.AccountTypeLoan,
		entity.AccountTypeOther:
		return true
	}
	return false
}

func isValidInvestmentType(t entity.InvestmentType) bool {
	switch t {
	case entity.InvestmentTypeStocks,
		entity.InvestmentTypeBonds,
		entity.InvestmentTypeMutualFunds,
		entity.InvestmentTypeETFs,
		entity.InvestmentTypeRealEstate,
		entity.InvestmentTypeCryptocurrency,
		entity.InvestmentTypeOther:
		return true
	}
	return false
}

func isValidBillFrequency(f entity.BillFrequency) bool {
	switch f {
	case entity.BillFrequencyWeekly,
		entity.BillFrequencyBiweekly,
		entity.BillFrequencyMonthly,
		entity.BillFrequencyQuarterly,
		entity.BillFrequencyYearly,
		entity.BillFrequencyCustom:
		return true
	}
	return false
}
