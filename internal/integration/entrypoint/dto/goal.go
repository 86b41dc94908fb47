package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// MilestoneDTO represents a single milestone in requests and responses.
// IDs are ordinal within the goal; omit or zero them on create and the
// server assigns stable ones.
type MilestoneDTO struct {
	ID        int    `json:"id"`
	Text      string `json:"text" binding:"required"`
	Completed bool   `json:"completed"`
}

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title           string         `json:"title" binding:"required"`
	Description     string         `json:"description"`
	TargetDate      string         `json:"target_date"`
	Category        string         `json:"category"`
	Milestones      []MilestoneDTO `json:"milestones"`
	TaskIDs         []string       `json:"task_ids" binding:"omitempty,dive,uuid"`
	HabitIDs        []string       `json:"habit_ids" binding:"omitempty,dive,uuid"`
	FinancialGoalID *string        `json:"financial_goal_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateGoalRequest represents the request body for goal update. List
// fields replace the stored list wholesale when present. Sending an empty
// string for financial_goal_id clears the link.
type UpdateGoalRequest struct {
	Title           *string         `json:"title,omitempty"`
	Description     *string         `json:"description,omitempty"`
	TargetDate      *string         `json:"target_date,omitempty"`
	Category        *string         `json:"category,omitempty"`
	Milestones      *[]MilestoneDTO `json:"milestones,omitempty"`
	TaskIDs         *[]string       `json:"task_ids,omitempty" binding:"omitempty,dive,uuid"`
	HabitIDs        *[]string       `json:"habit_ids,omitempty" binding:"omitempty,dive,uuid"`
	FinancialGoalID *string         `json:"financial_goal_id,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	TargetDate      string         `json:"target_date,omitempty"`
	Milestones      []MilestoneDTO `json:"milestones"`
	Progress        int            `json:"progress"`
	Category        string         `json:"category,omitempty"`
	TaskIDs         []string       `json:"task_ids"`
	HabitIDs        []string       `json:"habit_ids"`
	FinancialGoalID *string        `json:"financial_goal_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToMilestones converts milestone DTOs to domain milestones.
func ToMilestones(dtos []MilestoneDTO) []entity.Milestone {
	milestones := make([]entity.Milestone, len(dtos))
	for i, m := range dtos {
		milestones[i] = entity.Milestone{
			ID:        m.ID,
			Text:      m.Text,
			Completed: m.Completed,
		}
	}
	return milestones
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	milestones := make([]MilestoneDTO, len(g.Milestones))
	for i, m := range g.Milestones {
		milestones[i] = MilestoneDTO{
			ID:        m.ID,
			Text:      m.Text,
			Completed: m.Completed,
		}
	}

	response := GoalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Milestones:  milestones,
		Progress:    g.Progress,
		Category:    g.Category,
		TaskIDs:     uuidsToStrings(g.TaskIDs),
		HabitIDs:    uuidsToStrings(g.HabitIDs),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	if g.FinancialGoalID != nil {
		idStr := g.FinancialGoalID.String()
		response.FinancialGoalID = &idStr
	}

	return response
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
