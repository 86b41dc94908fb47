package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	byID map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{byID: map[uuid.UUID]*entity.Goal{}}
}

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	cp := *g
	r.byID[g.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.byID {
		if g.UserID == userID {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	cp := *g
	r.byID[g.ID] = &cp
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func TestToggleMilestone(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()
	userID := uuid.New()

	g := entity.NewGoal(userID, "Run a marathon", "", "2025-10-01", []entity.Milestone{
		{ID: 1, Text: "5K", Completed: true},
		{ID: 2, Text: "10K", Completed: false},
		{ID: 3, Text: "Half", Completed: false},
		{ID: 4, Text: "Full", Completed: false},
	})
	g.Progress = ComputeProgress(g.Milestones)
	if err := repo.Create(ctx, g); err != nil {
		t.Fatal(err)
	}

	uc := NewToggleMilestoneUseCase(repo)

	out, err := uc.Execute(ctx, ToggleMilestoneInput{UserID: userID, GoalID: g.ID, MilestoneID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Goal.Progress != 50 {
		t.Errorf("progress = %d, want 50", out.Goal.Progress)
	}
	if !out.Goal.Milestones[1].Completed {
		t.Error("milestone 2 should be completed")
	}

	// Toggling back restores the original progress.
	out, err = uc.Execute(ctx, ToggleMilestoneInput{UserID: userID, GoalID: g.ID, MilestoneID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Goal.Progress != 25 {
		t.Errorf("progress = %d, want 25", out.Goal.Progress)
	}
}

func TestToggleMilestone_UnknownMilestone(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()
	userID := uuid.New()

	g := entity.NewGoal(userID, "Read more", "", "", []entity.Milestone{{ID: 1, Text: "Book 1"}})
	if err := repo.Create(ctx, g); err != nil {
		t.Fatal(err)
	}

	uc := NewToggleMilestoneUseCase(repo)
	_, err := uc.Execute(ctx, ToggleMilestoneInput{UserID: userID, GoalID: g.ID, MilestoneID: 99})
	if err == nil {
		t.Fatal("expected error for unknown milestone")
	}
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeMilestoneNotFound {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestToggleMilestone_ForeignGoalHidden(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()

	owner := uuid.New()
	g := entity.NewGoal(owner, "Private", "", "", []entity.Milestone{{ID: 1, Text: "step"}})
	if err := repo.Create(ctx, g); err != nil {
		t.Fatal(err)
	}

	uc := NewToggleMilestoneUseCase(repo)
	_, err := uc.Execute(ctx, ToggleMilestoneInput{UserID: uuid.New(), GoalID: g.ID, MilestoneID: 1})
	if err == nil {
		t.Fatal("expected error for another user's goal")
	}
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateGoal_DerivesProgressAndIgnoresClientValue(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()
	uc := NewCreateGoalUseCase(repo)

	out, err := uc.Execute(ctx, CreateGoalInput{
		UserID: uuid.New(),
		Title:  "Learn Spanish",
		Milestones: []entity.Milestone{
			{ID: 1, Text: "A1", Completed: true},
			{ID: 2, Text: "A2", Completed: true},
			{ID: 3, Text: "B1", Completed: false},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Goal.Progress != 67 {
		t.Errorf("progress = %d, want 67", out.Goal.Progress)
	}
}

func TestCreateGoal_RejectsBadTargetDate(t *testing.T) {
	uc := NewCreateGoalUseCase(newFakeGoalRepo())

	_, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:     uuid.New(),
		Title:      "t",
		TargetDate: "10/01/2025",
	})
	if err == nil {
		t.Fatal("expected error for bad target date")
	}
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidTargetDate {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateGoal_ReplacingMilestonesRecomputesProgress(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()
	userID := uuid.New()

	g := entity.NewGoal(userID, "Save money", "", "", nil)
	if err := repo.Create(ctx, g); err != nil {
		t.Fatal(err)
	}

	ms := []entity.Milestone{
		{ID: 1, Text: "First 1k", Completed: true},
		{ID: 2, Text: "First 5k", Completed: false},
	}
	uc := NewUpdateGoalUseCase(repo)
	out, err := uc.Execute(ctx, UpdateGoalInput{
		UserID:     userID,
		GoalID:     g.ID,
		Milestones: &ms,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Goal.Progress != 50 {
		t.Errorf("progress = %d, want 50", out.Goal.Progress)
	}
}

func TestNormalizeMilestones_AssignsMissingIDs(t *testing.T) {
	ms := normalizeMilestones([]entity.Milestone{
		{Text: "a"},
		{ID: 1, Text: "b"},
		{ID: 1, Text: "c"}, // duplicate, must be reassigned
	})

	seen := map[int]bool{}
	for _, m := range ms {
		if m.ID <= 0 {
			t.Errorf("milestone %q has non-positive id %d", m.Text, m.ID)
		}
		if seen[m.ID] {
			t.Errorf("duplicate milestone id %d", m.ID)
		}
		seen[m.ID] = true
	}
}
