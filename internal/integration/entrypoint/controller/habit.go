package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/habit"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints.
type HabitController struct {
	listUseCase      *habit.ListHabitsUseCase
	createUseCase    *habit.CreateHabitUseCase
	updateUseCase    *habit.UpdateHabitUseCase
	toggleDayUseCase *habit.ToggleDayUseCase
	deleteUseCase    *habit.DeleteHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	toggleDayUseCase *habit.ToggleDayUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		toggleDayUseCase: toggleDayUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Build input
	input := habit.ListHabitsInput{
		UserID: userID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve habits",
		})
		return
	}

	// Build response
	response := dto.ToHabitListResponse(output.Habits)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse request body
	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	// Build input, defaulting frequency to daily
	input := habit.CreateHabitInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   entity.HabitFrequencyDaily,
	}
	if req.Frequency != nil {
		input.Frequency = entity.HabitFrequency(*req.Frequency)
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Build response
	response := dto.ToHabitResponse(output.Habit)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse habit ID from URL
	habitIDStr := ctx.Param("id")
	habitID, err := uuid.Parse(habitIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := habit.UpdateHabitInput{
		UserID:      userID,
		HabitID:     habitID,
		Title:       req.Title,
		Description: req.Description,
	}

	// Convert frequency if provided
	if req.Frequency != nil {
		frequency := entity.HabitFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Build response
	response := dto.ToHabitResponse(output.Habit)
	ctx.JSON(http.StatusOK, response)
}

// ToggleDay handles POST /habits/:id/toggle requests.
func (c *HabitController) ToggleDay(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse habit ID from URL
	habitIDStr := ctx.Param("id")
	habitID, err := uuid.Parse(habitIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Parse request body
	var req dto.ToggleHabitDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidWeekday),
		})
		return
	}

	// Build input
	input := habit.ToggleDayInput{
		UserID:  userID,
		HabitID: habitID,
		Weekday: req.Day,
	}

	// Execute use case
	output, err := c.toggleDayUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Build response
	response := dto.ToHabitResponse(output.Habit)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse habit ID from URL
	habitIDStr := ctx.Param("id")
	habitID, err := uuid.Parse(habitIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Build input
	input := habit.DeleteHabitInput{
		UserID:  userID,
		HabitID: habitID,
	}

	// Execute use case
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedHabitAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidHabitFrequency,
		domainerror.ErrCodeInvalidWeekday,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
