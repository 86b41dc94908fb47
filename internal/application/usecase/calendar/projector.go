// Package calendar contains the calendar projection use cases.
package calendar

import (
	"strings"
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// EventType identifies which entity kind produced a calendar event.
type EventType string

const (
	EventTypeTask    EventType = "task"
	EventTypeGoal    EventType = "goal"
	EventTypeHabit   EventType = "habit"
	EventTypeFinance EventType = "finance"
)

// Event is a single calendar entry derived from one entity on one day.
type Event struct {
	ID          string
	Title       string
	Type        EventType
	Completed   bool                // tasks only
	Priority    entity.TaskPriority // tasks only
	Description string              // goals only
}

// Day is one cell of the projected month grid.
type Day struct {
	Date           string
	DayNumber      int
	IsCurrentMonth bool
	IsToday        bool
	Events         []Event
}

// Snapshot is the read-only view of a user's entities a projection runs over.
type Snapshot struct {
	Tasks      []*entity.Task
	Goals      []*entity.Goal
	Habits     []*entity.Habit
	Categories []*entity.ExpenseCategory
}

const (
	// gridSize is the fixed 6-week month grid.
	gridSize = 42

	dateLayout = "2006-01-02"
)

// Project produces the 42-cell day grid for the month containing the given
// date. The grid begins on the Sunday on or before the 1st of the month.
// Events within a day are emitted in the fixed order task, goal, habit,
// finance. The projection is pure: for a given snapshot, month and today it
// always yields identical output.
//
// Entities whose date fails to parse are skipped, never reported.
func Project(month time.Time, today time.Time, snapshot Snapshot) []Day {
	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	todayStr := today.Format(dateLayout)

	days := make([]Day, 0, gridSize)
	for i := 0; i < gridSize; i++ {
		d := start.AddDate(0, 0, i)
		dateStr := d.Format(dateLayout)

		days = append(days, Day{
			Date:           dateStr,
			DayNumber:      d.Day(),
			IsCurrentMonth: d.Month() == firstOfMonth.Month() && d.Year() == firstOfMonth.Year(),
			IsToday:        dateStr == todayStr,
			Events:         eventsForDay(d, snapshot),
		})
	}
	return days
}

// eventsForDay evaluates every entity against a single calendar date.
func eventsForDay(day time.Time, snapshot Snapshot) []Event {
	events := []Event{}

	for _, t := range snapshot.Tasks {
		due, err := time.Parse(dateLayout, t.DueDate)
		if err != nil {
			continue
		}
		if sameDate(due, day) {
			events = append(events, Event{
				ID:        "task-" + t.ID.String(),
				Title:     t.Title,
				Type:      EventTypeTask,
				Completed: t.Completed,
				Priority:  t.Priority,
			})
		}
	}

	for _, g := range snapshot.Goals {
		target, err := time.Parse(dateLayout, g.TargetDate)
		if err != nil {
			continue
		}
		if sameDate(target, day) {
			events = append(events, Event{
				ID:          "goal-" + g.ID.String(),
				Title:       g.Title,
				Type:        EventTypeGoal,
				Description: g.Description,
			})
		}
	}

	// Weekly habits recur on the weekdays present in CompletedDays. The
	// field doubles as the completion record for the current period, so a
	// day marked done also projects forward as a scheduled day. That
	// coupling is longstanding observable behavior; keep it.
	weekday := int(day.Weekday()) + 1 // Sunday=1 .. Saturday=7
	for _, h := range snapshot.Habits {
		switch h.Frequency {
		case entity.HabitFrequencyDaily:
			// always scheduled
		case entity.HabitFrequencyWeekly:
			if !h.HasCompletedDay(weekday) {
				continue
			}
		default:
			continue
		}
		events = append(events, Event{
			ID:    "habit-" + h.ID.String(),
			Title: h.Title,
			Type:  EventTypeHabit,
		})
	}

	// Payment-due events are a heuristic projection from category names:
	// "credit" categories fall due on the 1st, "loan" categories on the
	// 15th. There is no explicit due-day field to project from.
	for _, c := range snapshot.Categories {
		name := strings.ToLower(c.Name)
		due := (day.Day() == 1 && strings.Contains(name, "credit")) ||
			(day.Day() == 15 && strings.Contains(name, "loan"))
		if !due {
			continue
		}
		events = append(events, Event{
			ID:    "finance-" + c.ID.String(),
			Title: c.Name + " Payment Due",
			Type:  EventTypeFinance,
		})
	}

	return events
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
