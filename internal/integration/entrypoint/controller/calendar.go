package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifetrack/backend/internal/application/usecase/calendar"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

const monthLayout = "2006-01"

// CalendarController handles the month grid projection endpoint.
type CalendarController struct {
	getCalendarUseCase *calendar.GetCalendarUseCase
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(getCalendarUseCase *calendar.GetCalendarUseCase) *CalendarController {
	return &CalendarController{
		getCalendarUseCase: getCalendarUseCase,
	}
}

// Get handles GET /calendar requests. The optional month query parameter
// selects the month to project (YYYY-MM); it defaults to the current month.
func (c *CalendarController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Resolve the month to project
	month := time.Now().UTC()
	if monthParam := ctx.Query("month"); monthParam != "" {
		parsed, err := time.Parse(monthLayout, monthParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format, expected YYYY-MM",
			})
			return
		}
		month = parsed
	}

	// Build input
	input := calendar.GetCalendarInput{
		UserID: userID,
		Month:  month,
	}

	// Execute use case
	output, err := c.getCalendarUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to project calendar",
		})
		return
	}

	// Build response
	response := dto.ToCalendarResponse(output.Days)
	ctx.JSON(http.StatusOK, response)
}
