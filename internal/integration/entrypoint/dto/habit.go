package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Frequency   *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Frequency   *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly"`
}

// ToggleHabitDayRequest represents the request body for toggling a weekday.
// Day is 1-indexed with Sunday as 1 and Saturday as 7.
type ToggleHabitDayRequest struct {
	Day int `json:"day" binding:"required,min=1,max=7"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Frequency     string    `json:"frequency"`
	CompletedDays []int     `json:"completed_days"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	days := h.CompletedDays
	if days == nil {
		days = []int{}
	}
	return HabitResponse{
		ID:            h.ID.String(),
		UserID:        h.UserID.String(),
		Title:         h.Title,
		Description:   h.Description,
		Frequency:     string(h.Frequency),
		CompletedDays: days,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

// ToHabitListResponse converts a list of habits to HabitListResponse.
func ToHabitListResponse(habits []*entity.Habit) HabitListResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		responses[i] = ToHabitResponse(h)
	}
	return HabitListResponse{
		Habits: responses,
	}
}
