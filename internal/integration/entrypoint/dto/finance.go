package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// UpdateFinancesRequest represents the request body for updating the
// top-level finances aggregate. Only income and the reminder recipient are
// writable; expenses, savings and net worth are derived.
type UpdateFinancesRequest struct {
	Income        *decimal.Decimal `json:"income,omitempty"`
	ReminderEmail *string          `json:"reminder_email,omitempty" binding:"omitempty,email"`
}

// FinancesResponse represents the finances aggregate in API responses.
// Monetary values are serialized as exact decimal strings.
type FinancesResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Savings       decimal.Decimal `json:"savings"`
	NetWorth      decimal.Decimal `json:"net_worth"`
	ReminderEmail string          `json:"reminder_email,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FinancesOverviewResponse is the full finances payload: the aggregate plus
// all of its constituent collections.
type FinancesOverviewResponse struct {
	Finances       FinancesResponse          `json:"finances"`
	Categories     []ExpenseCategoryResponse `json:"categories"`
	FinancialGoals []FinancialGoalResponse   `json:"financial_goals"`
	Accounts       []AccountResponse         `json:"accounts"`
	Investments    []InvestmentResponse      `json:"investments"`
	Bills          []RecurringBillResponse   `json:"bills"`
}

// CreateExpenseCategoryRequest represents the request body for category creation.
type CreateExpenseCategoryRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// UpdateExpenseCategoryRequest represents the request body for category update.
type UpdateExpenseCategoryRequest struct {
	Name   *string          `json:"name,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Color  *string          `json:"color,omitempty"`
}

// ExpenseCategoryResponse represents a single expense category.
type ExpenseCategoryResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Color     string          `json:"color,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ExpenseCategoryMutationResponse pairs a mutated category with the
// recomputed aggregate so clients can refresh derived totals in one trip.
type ExpenseCategoryMutationResponse struct {
	Category *ExpenseCategoryResponse `json:"category,omitempty"`
	Finances FinancesResponse         `json:"finances"`
}

// CreateFinancialGoalRequest represents the request body for financial goal creation.
type CreateFinancialGoalRequest struct {
	Name          string          `json:"name" binding:"required"`
	Type          string          `json:"type" binding:"omitempty,oneof=emergency_fund retirement house_downpayment car education travel debt_payoff other"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date"`
}

// UpdateFinancialGoalRequest represents the request body for financial goal update.
type UpdateFinancialGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=emergency_fund retirement house_downpayment car education travel debt_payoff other"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    *string          `json:"target_date,omitempty"`
	Archived      *bool            `json:"archived,omitempty"`
}

// FinancialGoalResponse represents a single financial goal.
type FinancialGoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date,omitempty"`
	Archived      bool            `json:"archived"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateAccountRequest represents the request body for account creation.
// Balance may be negative for debt accounts.
type CreateAccountRequest struct {
	Name              string          `json:"name" binding:"required"`
	Type              string          `json:"type" binding:"omitempty,oneof=checking savings investment retirement credit_card loan other"`
	Balance           decimal.Decimal `json:"balance"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	IncludeInNetWorth *bool           `json:"include_in_net_worth,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name              *string          `json:"name,omitempty"`
	Type              *string          `json:"type,omitempty" binding:"omitempty,oneof=checking savings investment retirement credit_card loan other"`
	Balance           *decimal.Decimal `json:"balance,omitempty"`
	InterestRate      *decimal.Decimal `json:"interest_rate,omitempty"`
	IncludeInNetWorth *bool            `json:"include_in_net_worth,omitempty"`
}

// AccountResponse represents a single financial account.
type AccountResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Balance           decimal.Decimal `json:"balance"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	IncludeInNetWorth bool            `json:"include_in_net_worth"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AccountMutationResponse pairs a mutated account with the recomputed aggregate.
type AccountMutationResponse struct {
	Account  *AccountResponse `json:"account,omitempty"`
	Finances FinancesResponse `json:"finances"`
}

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	Name          string          `json:"name" binding:"required"`
	Type          string          `json:"type" binding:"omitempty,oneof=stocks bonds mutual_funds etfs real_estate cryptocurrency other"`
	Value         decimal.Decimal `json:"value"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  string          `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateInvestmentRequest represents the request body for investment update.
type UpdateInvestmentRequest struct {
	Name          *string          `json:"name,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=stocks bonds mutual_funds etfs real_estate cryptocurrency other"`
	Value         *decimal.Decimal `json:"value,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	PurchaseDate  *string          `json:"purchase_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// InvestmentResponse represents a single investment holding.
type InvestmentResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Value         decimal.Decimal `json:"value"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  string          `json:"purchase_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvestmentMutationResponse pairs a mutated investment with the recomputed aggregate.
type InvestmentMutationResponse struct {
	Investment *InvestmentResponse `json:"investment,omitempty"`
	Finances   FinancesResponse    `json:"finances"`
}

// CreateBillRequest represents the request body for recurring bill creation.
type CreateBillRequest struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency" binding:"omitempty,oneof=weekly biweekly monthly quarterly yearly custom"`
	CustomDays   int             `json:"custom_days"`
	NextDueDate  string          `json:"next_due_date" binding:"required,datetime=2006-01-02"`
	ReminderDays *int            `json:"reminder_days,omitempty"`
}

// UpdateBillRequest represents the request body for recurring bill update.
type UpdateBillRequest struct {
	Name         *string          `json:"name,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Frequency    *string          `json:"frequency,omitempty" binding:"omitempty,oneof=weekly biweekly monthly quarterly yearly custom"`
	CustomDays   *int             `json:"custom_days,omitempty"`
	NextDueDate  *string          `json:"next_due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ReminderDays *int             `json:"reminder_days,omitempty"`
}

// RecurringBillResponse represents a single recurring bill.
type RecurringBillResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency"`
	CustomDays   int             `json:"custom_days,omitempty"`
	NextDueDate  string          `json:"next_due_date"`
	LastPaidDate *string         `json:"last_paid_date,omitempty"`
	ReminderDays int             `json:"reminder_days"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

const financeDateLayout = "2006-01-02"

// ToFinancesResponse converts a domain Finances entity to its DTO.
func ToFinancesResponse(f *entity.Finances) FinancesResponse {
	return FinancesResponse{
		ID:            f.ID.String(),
		UserID:        f.UserID.String(),
		Income:        f.Income,
		Expenses:      f.Expenses,
		Savings:       f.Savings,
		NetWorth:      f.NetWorth,
		ReminderEmail: f.ReminderEmail,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// ToExpenseCategoryResponse converts a domain ExpenseCategory to its DTO.
func ToExpenseCategoryResponse(c *entity.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Amount:    c.Amount,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToFinancialGoalResponse converts a domain FinancialGoal to its DTO.
func ToFinancialGoalResponse(g *entity.FinancialGoal) FinancialGoalResponse {
	return FinancialGoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		Type:          string(g.Type),
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Archived:      g.Archived,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToAccountResponse converts a domain FinancialAccount to its DTO.
func ToAccountResponse(a *entity.FinancialAccount) AccountResponse {
	return AccountResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		Type:              string(a.Type),
		Balance:           a.Balance,
		InterestRate:      a.InterestRate,
		IncludeInNetWorth: a.IncludeInNetWorth,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ToInvestmentResponse converts a domain Investment to its DTO.
func ToInvestmentResponse(i *entity.Investment) InvestmentResponse {
	response := InvestmentResponse{
		ID:            i.ID.String(),
		Name:          i.Name,
		Type:          string(i.Type),
		Value:         i.Value,
		PurchasePrice: i.PurchasePrice,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if !i.PurchaseDate.IsZero() {
		response.PurchaseDate = i.PurchaseDate.Format(financeDateLayout)
	}
	return response
}

// ToRecurringBillResponse converts a domain RecurringBill to its DTO.
func ToRecurringBillResponse(b *entity.RecurringBill) RecurringBillResponse {
	response := RecurringBillResponse{
		ID:           b.ID.String(),
		Name:         b.Name,
		Amount:       b.Amount,
		Frequency:    string(b.Frequency),
		CustomDays:   b.CustomDays,
		NextDueDate:  b.NextDueDate.Format(financeDateLayout),
		ReminderDays: b.ReminderDays,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.LastPaidDate != nil {
		paid := b.LastPaidDate.Format(financeDateLayout)
		response.LastPaidDate = &paid
	}
	return response
}

// ToFinancesOverviewResponse assembles the full finances payload.
func ToFinancesOverviewResponse(
	finances *entity.Finances,
	categories []*entity.ExpenseCategory,
	goals []*entity.FinancialGoal,
	accounts []*entity.FinancialAccount,
	investments []*entity.Investment,
	bills []*entity.RecurringBill,
) FinancesOverviewResponse {
	response := FinancesOverviewResponse{
		Finances:       ToFinancesResponse(finances),
		Categories:     make([]ExpenseCategoryResponse, len(categories)),
		FinancialGoals: make([]FinancialGoalResponse, len(goals)),
		Accounts:       make([]AccountResponse, len(accounts)),
		Investments:    make([]InvestmentResponse, len(investments)),
		Bills:          make([]RecurringBillResponse, len(bills)),
	}
	for i, c := range categories {
		response.Categories[i] = ToExpenseCategoryResponse(c)
	}
	for i, g := range goals {
		response.FinancialGoals[i] = ToFinancialGoalResponse(g)
	}
	for i, a := range accounts {
		response.Accounts[i] = ToAccountResponse(a)
	}
	for i, inv := range investments {
		response.Investments[i] = ToInvestmentResponse(inv)
	}
	for i, b := range bills {
		response.Bills[i] = ToRecurringBillResponse(b)
	}
	return response
}
