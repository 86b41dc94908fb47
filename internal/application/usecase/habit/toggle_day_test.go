package habit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

type fakeHabitRepo struct {
	byID map[uuid.UUID]*entity.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{byID: map[uuid.UUID]*entity.Habit{}}
}

func (r *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	cp := *h
	r.byID[h.ID] = &cp
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHabitRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, h := range r.byID {
		if h.UserID == userID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, h *entity.Habit) error {
	cp := *h
	r.byID[h.ID] = &cp
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func TestToggleDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHabitRepo()
	userID := uuid.New()

	h := entity.NewHabit(userID, "Gym", "", entity.HabitFrequencyWeekly)
	if err := repo.Create(ctx, h); err != nil {
		t.Fatal(err)
	}

	uc := NewToggleDayUseCase(repo)

	// Monday on, then off again.
	out, err := uc.Execute(ctx, ToggleDayInput{UserID: userID, HabitID: h.ID, Weekday: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Habit.HasCompletedDay(2) {
		t.Error("Monday should be marked after first toggle")
	}

	out, err = uc.Execute(ctx, ToggleDayInput{UserID: userID, HabitID: h.ID, Weekday: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Habit.HasCompletedDay(2) {
		t.Error("Monday should be cleared after second toggle")
	}
}

func TestToggleDay_RejectsOutOfRangeWeekday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHabitRepo()
	userID := uuid.New()

	h := entity.NewHabit(userID, "Gym", "", entity.HabitFrequencyWeekly)
	if err := repo.Create(ctx, h); err != nil {
		t.Fatal(err)
	}

	uc := NewToggleDayUseCase(repo)
	for _, weekday := range []int{0, 8, -1} {
		_, err := uc.Execute(ctx, ToggleDayInput{UserID: userID, HabitID: h.ID, Weekday: weekday})
		if err == nil {
			t.Fatalf("weekday %d: expected error", weekday)
		}
		var habitErr *domainerror.HabitError
		if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeInvalidWeekday {
			t.Errorf("weekday %d: unexpected error: %v", weekday, err)
		}
	}
}

func TestCreateHabit_RejectsUnknownFrequency(t *testing.T) {
	uc := NewCreateHabitUseCase(newFakeHabitRepo())

	_, err := uc.Execute(context.Background(), CreateHabitInput{
		UserID:    uuid.New(),
		Title:     "Stretch",
		Frequency: entity.HabitFrequency("monthly"),
	})
	if err == nil {
		t.Fatal("expected error for unknown frequency")
	}
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeInvalidHabitFrequency {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestToggleDay_ForeignHabitHidden(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHabitRepo()

	h := entity.NewHabit(uuid.New(), "Private", "", entity.HabitFrequencyDaily)
	if err := repo.Create(ctx, h); err != nil {
		t.Fatal(err)
	}

	uc := NewToggleDayUseCase(repo)
	_, err := uc.Execute(ctx, ToggleDayInput{UserID: uuid.New(), HabitID: h.ID, Weekday: 3})
	if err == nil {
		t.Fatal("expected error for another user's habit")
	}
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitNotFound {
		t.Errorf("unexpected error: %v", err)
	}
}
