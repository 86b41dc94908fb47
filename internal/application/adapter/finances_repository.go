package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// FinancesRepository defines the interface for the Finances aggregate root.
type FinancesRepository interface {
	// Create creates a new finances aggregate in the database.
	Create(ctx context.Context, finances *entity.Finances) error

	// FindByID retrieves a finances aggregate by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Finances, error)

	// FindByUserID retrieves the finances aggregate for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Finances, error)

	// Update updates an existing finances aggregate in the database.
	Update(ctx context.Context, finances *entity.Finances) error
}

// ExpenseCategoryRepository defines the interface for expense category persistence.
type ExpenseCategoryRepository interface {
	// Create creates a new expense category in the database.
	Create(ctx context.Context, category *entity.ExpenseCategory) error

	// FindByID retrieves an expense category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error)

	// FindByFinancesID retrieves all expense categories for a finances aggregate.
	FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.ExpenseCategory, error)

	// Update updates an existing expense category in the database.
	Update(ctx context.Context, category *entity.ExpenseCategory) error

	// Delete removes an expense category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FinancialGoalRepository defines the interface for financial goal persistence.
type FinancialGoalRepository interface {
	// Create creates a new financial goal in the database.
	Create(ctx context.Context, goal *entity.FinancialGoal) error

	// FindByID retrieves a financial goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialGoal, error)

	// FindByFinancesID retrieves all financial goals for a finances aggregate.
	FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.FinancialGoal, error)

	// Update updates an existing financial goal in the database.
	Update(ctx context.Context, goal *entity.FinancialGoal) error

	// Delete removes a financial goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountRepository defines the interface for financial account persistence.
type AccountRepository interface {
	// Create creates a new financial account in the database.
	Create(ctx context.Context, account *entity.FinancialAccount) error

	// FindByID retrieves a financial account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialAccount, error)

	// FindByFinancesID retrieves all financial accounts for a finances aggregate.
	FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.FinancialAccount, error)

	// Update updates an existing financial account in the database.
	Update(ctx context.Context, account *entity.FinancialAccount) error

	// Delete removes a financial account from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentRepository defines the interface for investment persistence.
type InvestmentRepository interface {
	// Create creates a new investment in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByFinancesID retrieves all investments for a finances aggregate.
	FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.Investment, error)

	// Update updates an existing investment in the database.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete removes an investment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecurringBillRepository defines the interface for recurring bill persistence.
type RecurringBillRepository interface {
	// Create creates a new recurring bill in the database.
	Create(ctx context.Context, bill *entity.RecurringBill) error

	// FindByID retrieves a recurring bill by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error)

	// FindByFinancesID retrieves all recurring bills for a finances aggregate.
	FindByFinancesID(ctx context.Context, financesID uuid.UUID) ([]*entity.RecurringBill, error)

	// FindAll retrieves every recurring bill (used by the reminder scanner).
	FindAll(ctx context.Context) ([]*entity.RecurringBill, error)

	// Update updates an existing recurring bill in the database.
	Update(ctx context.Context, bill *entity.RecurringBill) error

	// Delete removes a recurring bill from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
