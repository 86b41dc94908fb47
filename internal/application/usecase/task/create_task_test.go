package task

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

type fakeTaskRepo struct {
	byID map[uuid.UUID]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: map[uuid.UUID]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	cp := *t
	r.byID[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.byID {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	cp := *t
	r.byID[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func TestCreateTask_DefaultsPriorityToMedium(t *testing.T) {
	uc := NewCreateTaskUseCase(newFakeTaskRepo())

	out, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID:  uuid.New(),
		Title:   "Buy groceries",
		DueDate: "2025-03-14",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Task.Priority != entity.TaskPriorityMedium {
		t.Errorf("priority = %s, want medium", out.Task.Priority)
	}
	if out.Task.Completed {
		t.Error("new task must not be completed")
	}
}

func TestCreateTask_Validation(t *testing.T) {
	uc := NewCreateTaskUseCase(newFakeTaskRepo())
	bad := entity.TaskPriority("urgent")

	tests := []struct {
		name  string
		input CreateTaskInput
		code  domainerror.TaskErrorCode
	}{
		{
			"missing title",
			CreateTaskInput{UserID: uuid.New()},
			domainerror.ErrCodeMissingTaskFields,
		},
		{
			"bad due date",
			CreateTaskInput{UserID: uuid.New(), Title: "t", DueDate: "14-03-2025"},
			domainerror.ErrCodeInvalidDueDate,
		},
		{
			"bad priority",
			CreateTaskInput{UserID: uuid.New(), Title: "t", Priority: &bad},
			domainerror.ErrCodeInvalidTaskPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var taskErr *domainerror.TaskError
			if !errors.As(err, &taskErr) || taskErr.Code != tt.code {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateTask_EmptyDueDateAllowed(t *testing.T) {
	uc := NewCreateTaskUseCase(newFakeTaskRepo())

	if _, err := uc.Execute(context.Background(), CreateTaskInput{
		UserID: uuid.New(),
		Title:  "No deadline",
	}); err != nil {
		t.Fatalf("empty due date should be accepted: %v", err)
	}
}

func TestUpdateTask_ToggleCompleted(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	userID := uuid.New()

	task := entity.NewTask(userID, "Ship it", "", "2025-03-14", entity.TaskPriorityHigh)
	if err := repo.Create(ctx, task); err != nil {
		t.Fatal(err)
	}

	done := true
	uc := NewUpdateTaskUseCase(repo)
	out, err := uc.Execute(ctx, UpdateTaskInput{
		UserID:    userID,
		TaskID:    task.ID,
		Completed: &done,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Task.Completed {
		t.Error("task should be completed")
	}
	// Untouched fields survive a partial update.
	if out.Task.Title != "Ship it" || out.Task.Priority != entity.TaskPriorityHigh {
		t.Errorf("partial update clobbered fields: %+v", out.Task)
	}
}

func TestDeleteTask_ForeignTaskHidden(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()

	task := entity.NewTask(uuid.New(), "Private", "", "", entity.TaskPriorityLow)
	if err := repo.Create(ctx, task); err != nil {
		t.Fatal(err)
	}

	uc := NewDeleteTaskUseCase(repo)
	err := uc.Execute(ctx, DeleteTaskInput{UserID: uuid.New(), TaskID: task.ID})
	if err == nil {
		t.Fatal("expected error for another user's task")
	}
	var taskErr *domainerror.TaskError
	if !errors.As(err, &taskErr) || taskErr.Code != domainerror.ErrCodeTaskNotFound {
		t.Errorf("unexpected error: %v", err)
	}
	if _, findErr := repo.FindByID(ctx, task.ID); findErr != nil {
		t.Error("task should not have been deleted")
	}
}
