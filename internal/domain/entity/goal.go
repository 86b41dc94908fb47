package entity

import (
	"time"

	"github.com/google/uuid"
)

// Milestone is a named sub-step of a Goal with its own completion flag.
// Milestone IDs are ordinal within their goal, not global.
type Milestone struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Goal represents a long-term goal in the LifeTrack system.
//
// Progress is a derived field (0-100): it is always recomputed from the
// milestone list and never set directly by the user.
//
// TaskIDs, HabitIDs and FinancialGoalID are weak informational links, not
// foreign keys. Dangling ids are tolerated at read time.
type Goal struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Description     string
	TargetDate      string
	Milestones      []Milestone
	Progress        int
	Category        string
	TaskIDs         []uuid.UUID
	HabitIDs        []uuid.UUID
	FinancialGoalID *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewGoal creates a new Goal entity with zero progress.
func NewGoal(userID uuid.UUID, title, description, targetDate string, milestones []Milestone) *Goal {
	now := time.Now().UTC()

	if milestones == nil {
		milestones = []Milestone{}
	}

	return &Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
		Milestones:  milestones,
		Progress:    0,
		TaskIDs:     []uuid.UUID{},
		HabitIDs:    []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FindMilestone returns the index of the milestone with the given id, or -1.
func (g *Goal) FindMilestone(milestoneID int) int {
	for i, m := range g.Milestones {
		if m.ID == milestoneID {
			return i
		}
	}
	return -1
}
