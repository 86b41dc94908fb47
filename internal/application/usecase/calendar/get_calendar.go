package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// GetCalendarInput represents the input for a calendar projection.
type GetCalendarInput struct {
	UserID uuid.UUID
	Month  time.Time // any date within the month to project
}

// GetCalendarOutput represents the projected month grid.
type GetCalendarOutput struct {
	Days []Day
}

// GetCalendarUseCase loads a read-only snapshot of the user's entities and
// projects it onto the month grid. It never mutates anything and is safe to
// invoke repeatedly or concurrently.
type GetCalendarUseCase struct {
	taskRepo     adapter.TaskRepository
	goalRepo     adapter.GoalRepository
	habitRepo    adapter.HabitRepository
	financesRepo adapter.FinancesRepository
	categoryRepo adapter.ExpenseCategoryRepository
	clock        adapter.Clock
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(
	taskRepo adapter.TaskRepository,
	goalRepo adapter.GoalRepository,
	habitRepo adapter.HabitRepository,
	financesRepo adapter.FinancesRepository,
	categoryRepo adapter.ExpenseCategoryRepository,
	clock adapter.Clock,
) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		taskRepo:     taskRepo,
		goalRepo:     goalRepo,
		habitRepo:    habitRepo,
		financesRepo: financesRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the calendar projection.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	snapshot := Snapshot{}

	tasks, err := uc.taskRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	snapshot.Tasks = tasks

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	snapshot.Goals = goals

	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	snapshot.Habits = habits

	// A user without a finances aggregate simply projects no finance events.
	finances, err := uc.financesRepo.FindByUserID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrFinancesNotFound) {
		return nil, fmt.Errorf("failed to load finances: %w", err)
	}
	if finances != nil {
		categories, err := uc.categoryRepo.FindByFinancesID(ctx, finances.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load expense categories: %w", err)
		}
		snapshot.Categories = categories
	}

	return &GetCalendarOutput{
		Days: Project(input.Month, uc.clock.Now(), snapshot),
	}, nil
}
