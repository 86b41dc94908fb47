// Package finance contains finance-related use cases, including the ledger
// that keeps the derived Finances fields consistent with their constituent
// collections.
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

// ConstituentKind identifies which constituent collection of a Finances
// aggregate was mutated.
type ConstituentKind string

const (
	KindExpenseCategory ConstituentKind = "expense_category"
	KindAccount         ConstituentKind = "account"
	KindInvestment      ConstituentKind = "investment"
	KindIncome          ConstituentKind = "income"
)

// Ledger recomputes the derived fields of a Finances aggregate (expenses,
// savings, net worth) from its constituent collections. Every constituent
// mutation path must call OnConstituentChanged before returning, so that a
// subsequent read of the aggregate never observes stale derived values.
//
// All sums use exact decimal arithmetic.
type Ledger struct {
	financesRepo   adapter.FinancesRepository
	categoryRepo   adapter.ExpenseCategoryRepository
	accountRepo    adapter.AccountRepository
	investmentRepo adapter.InvestmentRepository
}

// NewLedger creates a new Ledger instance.
func NewLedger(
	financesRepo adapter.FinancesRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	accountRepo adapter.AccountRepository,
	investmentRepo adapter.InvestmentRepository,
) *Ledger {
	return &Ledger{
		financesRepo:   financesRepo,
		categoryRepo:   categoryRepo,
		accountRepo:    accountRepo,
		investmentRepo: investmentRepo,
	}
}

// OnConstituentChanged is the single recomputation hook invoked after any
// mutation of a constituent record. It dispatches to the recompute that the
// mutated kind affects.
func (l *Ledger) OnConstituentChanged(ctx context.Context, financesID uuid.UUID, kind ConstituentKind) error {
	switch kind {
	case KindExpenseCategory:
		return l.RecomputeExpenses(ctx, financesID)
	case KindAccount, KindInvestment:
		return l.RecomputeNetWorth(ctx, financesID)
	case KindIncome:
		return l.RecomputeSavings(ctx, financesID)
	default:
		return fmt.Errorf("unknown constituent kind %q", kind)
	}
}

// RecomputeExpenses sums all expense category amounts for the aggregate and
// writes the result to finances.expenses. Savings depends on expenses, so it
// is recomputed in the same write.
func (l *Ledger) RecomputeExpenses(ctx context.Context, financesID uuid.UUID) error {
	finances, err := l.loadFinances(ctx, financesID)
	if err != nil {
		return err
	}

	categories, err := l.categoryRepo.FindByFinancesID(ctx, financesID)
	if err != nil {
		return fmt.Errorf("failed to load expense categories: %w", err)
	}

	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Amount)
	}

	finances.Expenses = total
	finances.Savings = finances.Income.Sub(total)
	finances.UpdatedAt = time.Now().UTC()

	if err := l.financesRepo.Update(ctx, finances); err != nil {
		return fmt.Errorf("failed to write recomputed expenses: %w", err)
	}
	return nil
}

// RecomputeNetWorth sums the balances of accounts flagged for inclusion plus
// the current value of every investment, and writes the result to
// finances.netWorth.
func (l *Ledger) RecomputeNetWorth(ctx context.Context, financesID uuid.UUID) error {
	finances, err := l.loadFinances(ctx, financesID)
	if err != nil {
		return err
	}

	accounts, err := l.accountRepo.FindByFinancesID(ctx, financesID)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	investments, err := l.investmentRepo.FindByFinancesID(ctx, financesID)
	if err != nil {
		return fmt.Errorf("failed to load investments: %w", err)
	}

	total := decimal.Zero
	for _, a := range accounts {
		if a.IncludeInNetWorth {
			total = total.Add(a.Balance)
		}
	}
	for _, i := range investments {
		total = total.Add(i.Value)
	}

	finances.NetWorth = total
	finances.UpdatedAt = time.Now().UTC()

	if err := l.financesRepo.Update(ctx, finances); err != nil {
		return fmt.Errorf("failed to write recomputed net worth: %w", err)
	}
	return nil
}

// RecomputeSavings writes finances.savings = finances.income - finances.expenses.
func (l *Ledger) RecomputeSavings(ctx context.Context, financesID uuid.UUID) error {
	finances, err := l.loadFinances(ctx, financesID)
	if err != nil {
		return err
	}

	finances.Savings = finances.Income.Sub(finances.Expenses)
	finances.UpdatedAt = time.Now().UTC()

	if err := l.financesRepo.Update(ctx, finances); err != nil {
		return fmt.Errorf("failed to write recomputed savings: %w", err)
	}
	return nil
}

// loadFinances fetches the aggregate, translating a missing row into the
// coded NotFound error so callers fail before any partial recomputation.
func (l *Ledger) loadFinances(ctx context.Context, financesID uuid.UUID) (*entity.Finances, error) {
	finances, err := l.financesRepo.FindByID(ctx, financesID)
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
