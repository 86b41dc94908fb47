package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency represents how often a habit recurs.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "daily"
	HabitFrequencyWeekly HabitFrequency = "weekly"
)

// Habit represents a recurring habit being tracked.
// CompletedDays holds 1-indexed weekday numbers (Sunday=1 .. Saturday=7)
// marked done for the current tracking period.
type Habit struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	Frequency     HabitFrequency
	CompletedDays []int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewHabit creates a new Habit entity with no completed days.
func NewHabit(userID uuid.UUID, title, description string, frequency HabitFrequency) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		Frequency:     frequency,
		CompletedDays: []int{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasCompletedDay reports whether the given weekday (Sunday=1) is marked done.
func (h *Habit) HasCompletedDay(weekday int) bool {
	for _, d := range h.CompletedDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// ToggleDay adds the weekday to CompletedDays if absent, removes it if present.
func (h *Habit) ToggleDay(weekday int) {
	for i, d := range h.CompletedDays {
		if d == weekday {
			h.CompletedDays = append(h.CompletedDays[:i], h.CompletedDays[i+1:]...)
			return
		}
	}
	h.CompletedDays = append(h.CompletedDays, weekday)
}
