package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
// CompletedDays is stored as a JSON array so the same schema works on both
// postgres and the sqlite test harness.
type HabitModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Frequency     string    `gorm:"type:varchar(10);not null;default:'daily'"`
	CompletedDays string    `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var completedDays []int
	if m.CompletedDays != "" {
		if err := json.Unmarshal([]byte(m.CompletedDays), &completedDays); err != nil {
			slog.Warn("Failed to unmarshal habit completed days", "error", err, "id", m.ID)
		}
	}
	if completedDays == nil {
		completedDays = []int{}
	}

	return &entity.Habit{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		Description:   m.Description,
		Frequency:     entity.HabitFrequency(m.Frequency),
		CompletedDays: completedDays,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	completedDaysJSON, err := json.Marshal(habit.CompletedDays)
	if err != nil {
		slog.Error("Failed to marshal habit completed days", "error", err, "habit_id", habit.ID)
		completedDaysJSON = []byte("[]")
	}

	return &HabitModel{
		ID:            habit.ID,
		UserID:        habit.UserID,
		Title:         habit.Title,
		Description:   habit.Description,
		Frequency:     string(habit.Frequency),
		CompletedDays: string(completedDaysJSON),
		CreatedAt:     habit.CreatedAt,
		UpdatedAt:     habit.UpdatedAt,
	}
}
