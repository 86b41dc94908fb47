package dto

import (
	"github.com/lifetrack/backend/internal/application/usecase/calendar"
)

// CalendarEventResponse represents a single event on a calendar day.
type CalendarEventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Completed   bool   `json:"completed,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Description string `json:"description,omitempty"`
}

// CalendarDayResponse represents one cell of the month grid.
type CalendarDayResponse struct {
	Date           string                  `json:"date"`
	DayNumber      int                     `json:"day_number"`
	IsCurrentMonth bool                    `json:"is_current_month"`
	IsToday        bool                    `json:"is_today"`
	Events         []CalendarEventResponse `json:"events"`
}

// CalendarResponse represents the projected 42-cell month grid.
type CalendarResponse struct {
	Days []CalendarDayResponse `json:"days"`
}

// ToCalendarResponse converts projected days to the API response.
func ToCalendarResponse(days []calendar.Day) CalendarResponse {
	response := CalendarResponse{
		Days: make([]CalendarDayResponse, len(days)),
	}
	for i, day := range days {
		events := make([]CalendarEventResponse, len(day.Events))
		for j, ev := range day.Events {
			events[j] = CalendarEventResponse{
				ID:          ev.ID,
				Title:       ev.Title,
				Type:        string(ev.Type),
				Completed:   ev.Completed,
				Priority:    string(ev.Priority),
				Description: ev.Description,
			}
		}
		response.Days[i] = CalendarDayResponse{
			Date:           day.Date,
			DayNumber:      day.DayNumber,
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        day.IsToday,
			Events:         events,
		}
	}
	return response
}
