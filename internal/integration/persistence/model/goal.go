package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
// Milestones and the linked id lists are stored as JSON so the same schema
// works on both postgres and the sqlite test harness.
type GoalModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text"`
	TargetDate      string     `gorm:"type:varchar(10)"` // ISO date, stored as text
	Milestones      string     `gorm:"type:jsonb;not null;default:'[]'"`
	Progress        int        `gorm:"not null;default:0"`
	Category        string     `gorm:"type:varchar(100)"`
	TaskIDs         string     `gorm:"type:jsonb;not null;default:'[]'"`
	HabitIDs        string     `gorm:"type:jsonb;not null;default:'[]'"`
	FinancialGoalID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var milestones []entity.Milestone
	if m.Milestones != "" {
		if err := json.Unmarshal([]byte(m.Milestones), &milestones); err != nil {
			slog.Warn("Failed to unmarshal goal milestones", "error", err, "id", m.ID)
		}
	}
	if milestones == nil {
		milestones = []entity.Milestone{}
	}

	return &entity.Goal{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Description:     m.Description,
		TargetDate:      m.TargetDate,
		Milestones:      milestones,
		Progress:        m.Progress,
		Category:        m.Category,
		TaskIDs:         unmarshalIDList(m.TaskIDs, m.ID, "task ids"),
		HabitIDs:        unmarshalIDList(m.HabitIDs, m.ID, "habit ids"),
		FinancialGoalID: m.FinancialGoalID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	milestonesJSON, err := json.Marshal(goal.Milestones)
	if err != nil {
		slog.Error("Failed to marshal goal milestones", "error", err, "goal_id", goal.ID)
		milestonesJSON = []byte("[]")
	}

	return &GoalModel{
		ID:              goal.ID,
		UserID:          goal.UserID,
		Title:           goal.Title,
		Description:     goal.Description,
		TargetDate:      goal.TargetDate,
		Milestones:      string(milestonesJSON),
		Progress:        goal.Progress,
		Category:        goal.Category,
		TaskIDs:         marshalIDList(goal.TaskIDs),
		HabitIDs:        marshalIDList(goal.HabitIDs),
		FinancialGoalID: goal.FinancialGoalID,
		CreatedAt:       goal.CreatedAt,
		UpdatedAt:       goal.UpdatedAt,
	}
}

func marshalIDList(ids []uuid.UUID) string {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	out, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(out)
}

func unmarshalIDList(raw string, goalID uuid.UUID, what string) []uuid.UUID {
	var ids []uuid.UUID
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			slog.Warn("Failed to unmarshal goal "+what, "error", err, "id", goalID)
		}
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids
}
