package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

type fakeFinancesRepo struct {
	byID map[uuid.UUID]*entity.Finances
}

func newFakeFinancesRepo() *fakeFinancesRepo {
	return &fakeFinancesRepo{byID: map[uuid.UUID]*entity.Finances{}}
}

func (r *fakeFinancesRepo) Create(_ context.Context, f *entity.Finances) error {
	cp := *f
	r.byID[f.ID] = &cp
	return nil
}

func (r *fakeFinancesRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Finances, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrFinancesNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFinancesRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Finances, error) {
	for _, f := range r.byID {
		if f.UserID == userID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, domainerror.ErrFinancesNotFound
}

func (r *fakeFinancesRepo) Update(_ context.Context, f *entity.Finances) error {
	cp := *f
	r.byID[f.ID] = &cp
	return nil
}

type fakeCategoryRepo struct {
	byID map[uuid.UUID]*entity.ExpenseCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[uuid.UUID]*entity.ExpenseCategory{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.ExpenseCategory) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrExpenseCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) FindByFinancesID(_ context.Context, financesID uuid.UUID) ([]*entity.ExpenseCategory, error) {
	var out []*entity.ExpenseCategory
	for _, c := range r.byID {
		if c.FinancesID == financesID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.ExpenseCategory) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeAccountRepo struct {
	byID map[uuid.UUID]*entity.FinancialAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: map[uuid.UUID]*entity.FinancialAccount{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.FinancialAccount) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialAccount, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) FindByFinancesID(_ context.Context, financesID uuid.UUID) ([]*entity.FinancialAccount, error) {
	var out []*entity.FinancialAccount
	for _, a := range r.byID {
		if a.FinancesID == financesID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.FinancialAccount) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeInvestmentRepo struct {
	byID map[uuid.UUID]*entity.Investment
}

func newFakeInvestmentRepo() *fakeInvestmentRepo {
	return &fakeInvestmentRepo{byID: map[uuid.UUID]*entity.Investment{}}
}

func (r *fakeInvestmentRepo) Create(_ context.Context, i *entity.Investment) error {
	cp := *i
	r.byID[i.ID] = &cp
	return nil
}

func (r *fakeInvestmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Investment, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrInvestmentNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInvestmentRepo) FindByFinancesID(_ context.Context, financesID uuid.UUID) ([]*entity.Investment, error) {
	var out []*entity.Investment
	for _, i := range r.byID {
		if i.FinancesID == financesID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvestmentRepo) Update(_ context.Context, i *entity.Investment) error {
	cp := *i
	r.byID[i.ID] = &cp
	return nil
}

func (r *fakeInvestmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type ledgerFixture struct {
	finances    *entity.Finances
	financesR   *fakeFinancesRepo
	categoryR   *fakeCategoryRepo
	accountR    *fakeAccountRepo
	investmentR *fakeInvestmentRepo
	ledger      *Ledger
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	f := &ledgerFixture{
		financesR:   newFakeFinancesRepo(),
		categoryR:   newFakeCategoryRepo(),
		accountR:    newFakeAccountRepo(),
		investmentR: newFakeInvestmentRepo(),
	}
	f.ledger = NewLedger(f.financesR, f.categoryR, f.accountR, f.investmentR)

	f.finances = entity.NewFinances(uuid.New())
	if err := f.financesR.Create(context.Background(), f.finances); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *ledgerFixture) reload(t *testing.T) *entity.Finances {
	t.Helper()
	finances, err := f.financesR.FindByID(context.Background(), f.finances.ID)
	if err != nil {
		t.Fatal(err)
	}
	return finances
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_RecomputeExpensesAndSavings(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	f.finances.Income = dec("3000")
	if err := f.financesR.Update(ctx, f.finances); err != nil {
		t.Fatal(err)
	}

	rent := entity.NewExpenseCategory(f.finances.ID, "Rent", dec("1200"), "#ff0000")
	if err := f.categoryR.Create(ctx, rent); err != nil {
		t.Fatal(err)
	}

	if err := f.ledger.OnConstituentChanged(ctx, f.finances.ID, KindExpenseCategory); err != nil {
		t.Fatal(err)
	}

	got := f.reload(t)
	if !got.Expenses.Equal(dec("1200")) {
		t.Errorf("expenses = %s, want 1200", got.Expenses)
	}
	if !got.Savings.Equal(dec("1800")) {
		t.Errorf("savings = %s, want 1800", got.Savings)
	}
}

func TestLedger_ExactDecimalSums(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	// 0.1 + 0.2 must be exactly 0.3, never 0.30000000000000004.
	for _, amount := range []string{"0.1", "0.2"} {
		c := entity.NewExpenseCategory(f.finances.ID, "c"+amount, dec(amount), "")
		if err := f.categoryR.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.ledger.RecomputeExpenses(ctx, f.finances.ID); err != nil {
		t.Fatal(err)
	}

	got := f.reload(t)
	if got.Expenses.String() != "0.3" {
		t.Errorf("expenses = %s, want exactly 0.3", got.Expenses)
	}
}

func TestLedger_RecomputeNetWorth(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	checking := entity.NewFinancialAccount(f.finances.ID, "Checking", entity.AccountTypeChecking, dec("2500.50"), decimal.Zero, true)
	loan := entity.NewFinancialAccount(f.finances.ID, "Car Loan", entity.AccountTypeLoan, dec("-8000"), dec("4.5"), true)
	excluded := entity.NewFinancialAccount(f.finances.ID, "Old 401k", entity.AccountTypeRetirement, dec("99999"), decimal.Zero, false)
	for _, a := range []*entity.FinancialAccount{checking, loan, excluded} {
		if err := f.accountR.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	etf := entity.NewInvestment(f.finances.ID, "Index fund", entity.InvestmentTypeETFs, dec("10000"), dec("9000"), time.Now())
	if err := f.investmentR.Create(ctx, etf); err != nil {
		t.Fatal(err)
	}

	if err := f.ledger.OnConstituentChanged(ctx, f.finances.ID, KindAccount); err != nil {
		t.Fatal(err)
	}

	// 2500.50 - 8000 + 10000; the excluded account contributes nothing.
	got := f.reload(t)
	if !got.NetWorth.Equal(dec("4500.50")) {
		t.Errorf("net worth = %s, want 4500.50", got.NetWorth)
	}
}

func TestLedger_RecomputeSavingsOnIncomeChange(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	f.finances.Income = dec("5000")
	f.finances.Expenses = dec("1750.25")
	if err := f.financesR.Update(ctx, f.finances); err != nil {
		t.Fatal(err)
	}

	if err := f.ledger.OnConstituentChanged(ctx, f.finances.ID, KindIncome); err != nil {
		t.Fatal(err)
	}

	got := f.reload(t)
	if !got.Savings.Equal(dec("3249.75")) {
		t.Errorf("savings = %s, want 3249.75", got.Savings)
	}
}

func TestLedger_NegativeSavingsAllowed(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	f.finances.Income = dec("1000")
	if err := f.financesR.Update(ctx, f.finances); err != nil {
		t.Fatal(err)
	}

	c := entity.NewExpenseCategory(f.finances.ID, "Rent", dec("1500"), "")
	if err := f.categoryR.Create(ctx, c); err != nil {
		t.Fatal(err)
	}

	if err := f.ledger.RecomputeExpenses(ctx, f.finances.ID); err != nil {
		t.Fatal(err)
	}

	got := f.reload(t)
	if !got.Savings.Equal(dec("-500")) {
		t.Errorf("savings = %s, want -500", got.Savings)
	}
}

func TestLedger_MissingAggregate(t *testing.T) {
	f := newLedgerFixture(t)

	err := f.ledger.RecomputeExpenses(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for unknown aggregate")
	}
	var financeErr *domainerror.FinanceError
	if !errors.As(err, &financeErr) || financeErr.Code != domainerror.ErrCodeFinancesNotFound {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLedger_UnknownKind(t *testing.T) {
	f := newLedgerFixture(t)

	if err := f.ledger.OnConstituentChanged(context.Background(), f.finances.ID, ConstituentKind("bogus")); err == nil {
		t.Fatal("expected error for unknown constituent kind")
	}
}

func TestCreateExpenseCategoryUseCase_RecomputesBeforeReturning(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	f.finances.Income = dec("3000")
	if err := f.financesR.Update(ctx, f.finances); err != nil {
		t.Fatal(err)
	}

	uc := NewCreateExpenseCategoryUseCase(f.financesR, f.categoryR, f.ledger)
	out, err := uc.Execute(ctx, CreateExpenseCategoryInput{
		UserID: f.finances.UserID,
		Name:   "Rent",
		Amount: dec("1200"),
		Color:  "#00ff00",
	})
	if err != nil {
		t.Fatal(err)
	}

	// The returned aggregate must already carry the recomputed values.
	if !out.Finances.Expenses.Equal(dec("1200")) {
		t.Errorf("expenses = %s, want 1200", out.Finances.Expenses)
	}
	if !out.Finances.Savings.Equal(dec("1800")) {
		t.Errorf("savings = %s, want 1800", out.Finances.Savings)
	}
}

func TestCreateExpenseCategoryUseCase_RejectsNegativeAmount(t *testing.T) {
	f := newLedgerFixture(t)

	uc := NewCreateExpenseCategoryUseCase(f.financesR, f.categoryR, f.ledger)
	_, err := uc.Execute(context.Background(), CreateExpenseCategoryInput{
		UserID: f.finances.UserID,
		Name:   "Rent",
		Amount: dec("-1"),
	})
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
	var financeErr *domainerror.FinanceError
	if !errors.As(err, &financeErr) || financeErr.Code != domainerror.ErrCodeInvalidAmount {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeleteAccountUseCase_RejectsForeignAccount(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	other := entity.NewFinances(uuid.New())
	if err := f.financesR.Create(ctx, other); err != nil {
		t.Fatal(err)
	}
	foreign := entity.NewFinancialAccount(other.ID, "Theirs", entity.AccountTypeChecking, dec("10"), decimal.Zero, true)
	if err := f.accountR.Create(ctx, foreign); err != nil {
		t.Fatal(err)
	}

	uc := NewDeleteAccountUseCase(f.financesR, f.accountR, f.ledger)
	_, err := uc.Execute(ctx, DeleteAccountInput{UserID: f.finances.UserID, AccountID: foreign.ID})
	if err == nil {
		t.Fatal("expected not-found for another user's account")
	}
	var financeErr *domainerror.FinanceError
	if !errors.As(err, &financeErr) || financeErr.Code != domainerror.ErrCodeAccountNotFound {
		t.Errorf("unexpected error: %v", err)
	}
}
