package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProject_GridShape(t *testing.T) {
	months := []time.Time{
		date(2025, time.January, 1),   // starts Wednesday
		date(2025, time.February, 10), // 28-day month
		date(2025, time.March, 31),    // starts Saturday
		date(2025, time.June, 15),     // starts Sunday
		date(2024, time.February, 29), // leap February
	}

	for _, month := range months {
		t.Run(month.Format("2006-01"), func(t *testing.T) {
			days := Project(month, date(2025, time.January, 1), Snapshot{})

			if len(days) != 42 {
				t.Fatalf("grid size = %d, want 42", len(days))
			}

			first, err := time.Parse("2006-01-02", days[0].Date)
			if err != nil {
				t.Fatalf("first cell date %q unparseable: %v", days[0].Date, err)
			}
			if first.Weekday() != time.Sunday {
				t.Errorf("grid starts on %s, want Sunday", first.Weekday())
			}
			if first.After(time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("grid start %s is after the 1st of the month", days[0].Date)
			}

			inMonth := 0
			for _, d := range days {
				if d.IsCurrentMonth {
					inMonth++
				}
			}
			lastDay := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if inMonth != lastDay {
				t.Errorf("IsCurrentMonth cells = %d, want %d", inMonth, lastDay)
			}
		})
	}
}

func TestProject_GridStartsOnFirstWhenMonthStartsSunday(t *testing.T) {
	// June 1st 2025 is a Sunday, so the grid begins on the 1st itself.
	days := Project(date(2025, time.June, 1), date(2025, time.June, 1), Snapshot{})
	if days[0].Date != "2025-06-01" {
		t.Errorf("grid start = %s, want 2025-06-01", days[0].Date)
	}
}

func TestProject_EmptySnapshot(t *testing.T) {
	days := Project(date(2025, time.March, 1), date(2025, time.March, 10), Snapshot{})
	for _, d := range days {
		if len(d.Events) != 0 {
			t.Fatalf("day %s has %d events, want 0", d.Date, len(d.Events))
		}
	}
}

func TestProject_IsToday(t *testing.T) {
	today := date(2025, time.March, 10)
	days := Project(date(2025, time.March, 1), today, Snapshot{})

	count := 0
	for _, d := range days {
		if d.IsToday {
			count++
			if d.Date != "2025-03-10" {
				t.Errorf("IsToday on %s, want 2025-03-10", d.Date)
			}
		}
	}
	if count != 1 {
		t.Errorf("IsToday cells = %d, want 1", count)
	}
}

func TestProject_TaskAndGoalEvents(t *testing.T) {
	task := &entity.Task{
		ID:       uuid.New(),
		Title:    "File taxes",
		DueDate:  "2025-03-14",
		Priority: entity.TaskPriorityHigh,
	}
	goal := &entity.Goal{
		ID:          uuid.New(),
		Title:       "Run a 10K",
		Description: "Spring race",
		TargetDate:  "2025-03-14",
	}

	days := Project(date(2025, time.March, 1), date(2025, time.March, 1), Snapshot{
		Tasks: []*entity.Task{task},
		Goals: []*entity.Goal{goal},
	})

	var target *Day
	for i := range days {
		if days[i].Date == "2025-03-14" {
			target = &days[i]
			break
		}
	}
	if target == nil {
		t.Fatal("2025-03-14 not in grid")
	}

	if len(target.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(target.Events))
	}
	// Fixed ordering: task before goal.
	if target.Events[0].Type != EventTypeTask {
		t.Errorf("first event type = %s, want task", target.Events[0].Type)
	}
	if target.Events[0].Priority != entity.TaskPriorityHigh {
		t.Errorf("task event priority = %s, want high", target.Events[0].Priority)
	}
	if target.Events[1].Type != EventTypeGoal {
		t.Errorf("second event type = %s, want goal", target.Events[1].Type)
	}
	if target.Events[1].Description != "Spring race" {
		t.Errorf("goal event description = %q", target.Events[1].Description)
	}

	for _, d := range days {
		if d.Date != "2025-03-14" && len(d.Events) != 0 {
			t.Errorf("unexpected events on %s", d.Date)
		}
	}
}

func TestProject_DailyHabitOnEveryCell(t *testing.T) {
	habit := &entity.Habit{ID: uuid.New(), Title: "Meditate", Frequency: entity.HabitFrequencyDaily}

	days := Project(date(2025, time.March, 1), date(2025, time.March, 1), Snapshot{
		Habits: []*entity.Habit{habit},
	})

	for _, d := range days {
		if len(d.Events) != 1 || d.Events[0].Type != EventTypeHabit {
			t.Fatalf("day %s: expected exactly one habit event", d.Date)
		}
	}
}

func TestProject_WeeklyHabitOnCompletedWeekdays(t *testing.T) {
	// Monday=2, Wednesday=4 in the Sunday=1 indexing.
	habit := &entity.Habit{
		ID:            uuid.New(),
		Title:         "Gym",
		Frequency:     entity.HabitFrequencyWeekly,
		CompletedDays: []int{2, 4},
	}

	days := Project(date(2025, time.March, 1), date(2025, time.March, 1), Snapshot{
		Habits: []*entity.Habit{habit},
	})

	total := 0
	for _, d := range days {
		parsed, _ := time.Parse("2006-01-02", d.Date)
		wantEvent := parsed.Weekday() == time.Monday || parsed.Weekday() == time.Wednesday
		if wantEvent {
			total++
			if len(d.Events) != 1 {
				t.Errorf("day %s (%s): events = %d, want 1", d.Date, parsed.Weekday(), len(d.Events))
			}
		} else if len(d.Events) != 0 {
			t.Errorf("day %s (%s): unexpected habit event", d.Date, parsed.Weekday())
		}
	}
	if total != 12 {
		t.Errorf("Monday+Wednesday cells = %d, want 12", total)
	}
}

func TestProject_FinanceEventHeuristics(t *testing.T) {
	credit := &entity.ExpenseCategory{ID: uuid.New(), Name: "Credit Card"}
	loan := &entity.ExpenseCategory{ID: uuid.New(), Name: "Student Loan"}
	rent := &entity.ExpenseCategory{ID: uuid.New(), Name: "Rent"}

	days := Project(date(2025, time.March, 1), date(2025, time.March, 1), Snapshot{
		Categories: []*entity.ExpenseCategory{credit, loan, rent},
	})

	for _, d := range days {
		switch d.DayNumber {
		case 1:
			if len(d.Events) != 1 {
				t.Fatalf("day %s: events = %d, want 1", d.Date, len(d.Events))
			}
			if d.Events[0].Title != "Credit Card Payment Due" {
				t.Errorf("day %s: title = %q", d.Date, d.Events[0].Title)
			}
			if d.Events[0].Type != EventTypeFinance {
				t.Errorf("day %s: type = %s", d.Date, d.Events[0].Type)
			}
		case 15:
			if len(d.Events) != 1 || d.Events[0].Title != "Student Loan Payment Due" {
				t.Fatalf("day %s: want single loan event, got %+v", d.Date, d.Events)
			}
		default:
			if len(d.Events) != 0 {
				t.Errorf("day %s: unexpected events %+v", d.Date, d.Events)
			}
		}
	}
}

func TestProject_FinanceMatchIsCaseInsensitive(t *testing.T) {
	category := &entity.ExpenseCategory{ID: uuid.New(), Name: "CREDIT union dues"}

	days := Project(date(2025, time.March, 1), date(2025, time.March, 1), Snapshot{
		Categories: []*entity.ExpenseCategory{category},
	})

	found := false
	for _, d := range days {
		if d.DayNumber == 1 && len(d.Events) == 1 {
			found = true
		}
	}
	if !found {
		t.Error("expected a payment-due event on the 1st for a CREDIT category")
	}
}

func TestProject_UnparseableDatesAreSkipped(t *testing.T) {
	tasks := []*entity.Task{
		{ID: uuid.New(), Title: "bad date", DueDate: "03/14/2025"},
		{ID: uuid.New(), Title: "no date", DueDate: ""},
	}
	goals := []*entity.Goal{
		{ID: uuid.New(), Title: "bad date", TargetDate: "not-a-date"},
	}

	days := Project(date(2025, time.March, 1), date(2025, time.March, 1), Snapshot{
		Tasks: tasks,
		Goals: goals,
	})

	for _, d := range days {
		if len(d.Events) != 0 {
			t.Fatalf("day %s: events from unparseable dates: %+v", d.Date, d.Events)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	snapshot := Snapshot{
		Tasks:  []*entity.Task{{ID: uuid.New(), Title: "t", DueDate: "2025-03-05", Priority: entity.TaskPriorityLow}},
		Goals:  []*entity.Goal{{ID: uuid.New(), Title: "g", TargetDate: "2025-03-20"}},
		Habits: []*entity.Habit{{ID: uuid.New(), Title: "h", Frequency: entity.HabitFrequencyWeekly, CompletedDays: []int{6}}},
		Categories: []*entity.ExpenseCategory{
			{ID: uuid.New(), Name: "Car Loan"},
		},
	}

	month := date(2025, time.March, 1)
	today := date(2025, time.March, 12)

	first := Project(month, today, snapshot)
	second := Project(month, today, snapshot)

	if !reflect.DeepEqual(first, second) {
		t.Error("projection is not deterministic for an identical snapshot")
	}
}
