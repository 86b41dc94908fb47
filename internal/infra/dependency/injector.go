// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/lifetrack/backend/config"
	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/application/usecase/calendar"
	"github.com/lifetrack/backend/internal/application/usecase/finance"
	"github.com/lifetrack/backend/internal/application/usecase/goal"
	"github.com/lifetrack/backend/internal/application/usecase/habit"
	"github.com/lifetrack/backend/internal/application/usecase/task"
	"github.com/lifetrack/backend/internal/infra/server/router"
	"github.com/lifetrack/backend/internal/integration/email"
	"github.com/lifetrack/backend/internal/integration/email/templates"
	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
	"github.com/lifetrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	BillScanner *finance.ScanBillRemindersUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	taskRepo := persistence.NewTaskRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	financesRepo := persistence.NewFinancesRepository(db)
	categoryRepo := persistence.NewExpenseCategoryRepository(db)
	financialGoalRepo := persistence.NewFinancialGoalRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	billRepo := persistence.NewRecurringBillRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	clock := adapter.SystemClock{}

	// Create task use cases
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo)
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo)
	toggleDayUseCase := habit.NewToggleDayUseCase(habitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	toggleMilestoneUseCase := goal.NewToggleMilestoneUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create finance use cases
	ledger := finance.NewLedger(financesRepo, categoryRepo, accountRepo, investmentRepo)
	getFinancesUseCase := finance.NewGetFinancesUseCase(
		financesRepo, categoryRepo, financialGoalRepo, accountRepo, investmentRepo, billRepo,
	)
	updateFinancesUseCase := finance.NewUpdateFinancesUseCase(financesRepo, ledger)

	createCategoryUseCase := finance.NewCreateExpenseCategoryUseCase(financesRepo, categoryRepo, ledger)
	updateCategoryUseCase := finance.NewUpdateExpenseCategoryUseCase(financesRepo, categoryRepo, ledger)
	deleteCategoryUseCase := finance.NewDeleteExpenseCategoryUseCase(financesRepo, categoryRepo, ledger)

	createFinancialGoalUseCase := finance.NewCreateFinancialGoalUseCase(financesRepo, financialGoalRepo)
	updateFinancialGoalUseCase := finance.NewUpdateFinancialGoalUseCase(financesRepo, financialGoalRepo)
	deleteFinancialGoalUseCase := finance.NewDeleteFinancialGoalUseCase(financesRepo, financialGoalRepo)

	createAccountUseCase := finance.NewCreateAccountUseCase(financesRepo, accountRepo, ledger)
	updateAccountUseCase := finance.NewUpdateAccountUseCase(financesRepo, accountRepo, ledger)
	deleteAccountUseCase := finance.NewDeleteAccountUseCase(financesRepo, accountRepo, ledger)

	createInvestmentUseCase := finance.NewCreateInvestmentUseCase(financesRepo, investmentRepo, ledger)
	updateInvestmentUseCase := finance.NewUpdateInvestmentUseCase(financesRepo, investmentRepo, ledger)
	deleteInvestmentUseCase := finance.NewDeleteInvestmentUseCase(financesRepo, investmentRepo, ledger)

	createBillUseCase := finance.NewCreateBillUseCase(financesRepo, billRepo)
	updateBillUseCase := finance.NewUpdateBillUseCase(financesRepo, billRepo)
	deleteBillUseCase := finance.NewDeleteBillUseCase(financesRepo, billRepo)
	payBillUseCase := finance.NewPayBillUseCase(financesRepo, billRepo, clock)
	snoozeBillUseCase := finance.NewSnoozeBillUseCase(financesRepo, billRepo)

	// Create calendar use case
	getCalendarUseCase := calendar.NewGetCalendarUseCase(
		taskRepo, goalRepo, habitRepo, financesRepo, categoryRepo, clock,
	)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	taskController := controller.NewTaskController(
		listTasksUseCase,
		createTaskUseCase,
		updateTaskUseCase,
		deleteTaskUseCase,
	)

	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		updateHabitUseCase,
		toggleDayUseCase,
		deleteHabitUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		toggleMilestoneUseCase,
		deleteGoalUseCase,
	)

	financeController := controller.NewFinanceController(controller.FinanceControllerParams{
		GetFinances:    getFinancesUseCase,
		UpdateFinances: updateFinancesUseCase,

		CreateCategory: createCategoryUseCase,
		UpdateCategory: updateCategoryUseCase,
		DeleteCategory: deleteCategoryUseCase,

		CreateGoal: createFinancialGoalUseCase,
		UpdateGoal: updateFinancialGoalUseCase,
		DeleteGoal: deleteFinancialGoalUseCase,

		CreateAccount: createAccountUseCase,
		UpdateAccount: updateAccountUseCase,
		DeleteAccount: deleteAccountUseCase,

		CreateInvestment: createInvestmentUseCase,
		UpdateInvestment: updateInvestmentUseCase,
		DeleteInvestment: deleteInvestmentUseCase,

		CreateBill: createBillUseCase,
		UpdateBill: updateBillUseCase,
		DeleteBill: deleteBillUseCase,
		PayBill:    payBillUseCase,
		SnoozeBill: snoozeBillUseCase,
	})

	calendarController := controller.NewCalendarController(getCalendarUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}

	// Create email pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}

	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	billScanner := finance.NewScanBillRemindersUseCase(
		financesRepo, billRepo, emailQueueRepo, clock, slog.Default(),
	)

	// Create router
	r := router.NewRouter(
		healthController,
		taskController,
		habitController,
		goalController,
		financeController,
		calendarController,
		rateLimiter,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		BillScanner: billScanner,
	}, nil
}
