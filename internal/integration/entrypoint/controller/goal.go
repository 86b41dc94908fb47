package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/goal"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase            *goal.ListGoalsUseCase
	createUseCase          *goal.CreateGoalUseCase
	getUseCase             *goal.GetGoalUseCase
	updateUseCase          *goal.UpdateGoalUseCase
	toggleMilestoneUseCase *goal.ToggleMilestoneUseCase
	deleteUseCase          *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	toggleMilestoneUseCase *goal.ToggleMilestoneUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		getUseCase:             getUseCase,
		updateUseCase:          updateUseCase,
		toggleMilestoneUseCase: toggleMilestoneUseCase,
		deleteUseCase:          deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
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
	input := goal.ListGoalsInput{
		UserID: userID,
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	// Build response
	response := dto.ToGoalListResponse(output.Goals)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
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
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	// Build input
	input := goal.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Category:    req.Category,
		Milestones:  dto.ToMilestones(req.Milestones),
	}

	// Parse linked ids; validation already guaranteed uuid format
	input.TaskIDs = parseUUIDList(req.TaskIDs)
	input.HabitIDs = parseUUIDList(req.HabitIDs)
	if req.FinancialGoalID != nil && *req.FinancialGoalID != "" {
		id, err := uuid.Parse(*req.FinancialGoalID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid financial goal ID format",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.FinancialGoalID = &id
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse goal ID from URL
	goalIDStr := ctx.Param("id")
	goalID, err := uuid.Parse(goalIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Build input
	input := goal.GetGoalInput{
		UserID: userID,
		GoalID: goalID,
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse goal ID from URL
	goalIDStr := ctx.Param("id")
	goalID, err := uuid.Parse(goalIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := goal.UpdateGoalInput{
		UserID:      userID,
		GoalID:      goalID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Category:    req.Category,
	}

	// Milestone list replaces the stored one wholesale
	if req.Milestones != nil {
		milestones := dto.ToMilestones(*req.Milestones)
		input.Milestones = &milestones
	}

	if req.TaskIDs != nil {
		ids := parseUUIDList(*req.TaskIDs)
		input.TaskIDs = &ids
	}
	if req.HabitIDs != nil {
		ids := parseUUIDList(*req.HabitIDs)
		input.HabitIDs = &ids
	}

	// Empty string clears the financial goal link
	if req.FinancialGoalID != nil {
		if *req.FinancialGoalID == "" {
			var cleared *uuid.UUID
			input.FinancialGoalID = &cleared
		} else {
			id, err := uuid.Parse(*req.FinancialGoalID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid financial goal ID format",
				})
				return
			}
			linked := &id
			input.FinancialGoalID = &linked
		}
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// ToggleMilestone handles POST /goals/:id/milestones/:milestoneId/toggle requests.
func (c *GoalController) ToggleMilestone(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse goal ID from URL
	goalIDStr := ctx.Param("id")
	goalID, err := uuid.Parse(goalIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Parse milestone ID from URL
	milestoneID, err := strconv.Atoi(ctx.Param("milestoneId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid milestone ID format",
			Code:  string(domainerror.ErrCodeMilestoneNotFound),
		})
		return
	}

	// Build input
	input := goal.ToggleMilestoneInput{
		UserID:      userID,
		GoalID:      goalID,
		MilestoneID: milestoneID,
	}

	// Execute use case
	output, err := c.toggleMilestoneUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	response := dto.ToGoalResponse(output.Goal)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return
	}

	// Parse goal ID from URL
	goalIDStr := ctx.Param("id")
	goalID, err := uuid.Parse(goalIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Build input
	input := goal.DeleteGoalInput{
		UserID: userID,
		GoalID: goalID,
	}

	// Execute use case
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound, domainerror.ErrCodeMilestoneNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTargetDate,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseUUIDList converts validated uuid strings, dropping any that fail to parse.
func parseUUIDList(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
