package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/usecase/finance"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/entrypoint/dto"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

const financeDateLayout = "2006-01-02"

// FinanceController handles the finances aggregate and all of its
// constituent endpoints.
type FinanceController struct {
	getFinancesUseCase    *finance.GetFinancesUseCase
	updateFinancesUseCase *finance.UpdateFinancesUseCase

	createCategoryUseCase *finance.CreateExpenseCategoryUseCase
	updateCategoryUseCase *finance.UpdateExpenseCategoryUseCase
	deleteCategoryUseCase *finance.DeleteExpenseCategoryUseCase

	createGoalUseCase *finance.CreateFinancialGoalUseCase
	updateGoalUseCase *finance.UpdateFinancialGoalUseCase
	deleteGoalUseCase *finance.DeleteFinancialGoalUseCase

	createAccountUseCase *finance.CreateAccountUseCase
	updateAccountUseCase *finance.UpdateAccountUseCase
	deleteAccountUseCase *finance.DeleteAccountUseCase

	createInvestmentUseCase *finance.CreateInvestmentUseCase
	updateInvestmentUseCase *finance.UpdateInvestmentUseCase
	deleteInvestmentUseCase *finance.DeleteInvestmentUseCase

	createBillUseCase *finance.CreateBillUseCase
	updateBillUseCase *finance.UpdateBillUseCase
	deleteBillUseCase *finance.DeleteBillUseCase
	payBillUseCase    *finance.PayBillUseCase
	snoozeBillUseCase *finance.SnoozeBillUseCase
}

// FinanceControllerParams groups the use cases wired into the controller.
type FinanceControllerParams struct {
	GetFinances    *finance.GetFinancesUseCase
	UpdateFinances *finance.UpdateFinancesUseCase

	CreateCategory *finance.CreateExpenseCategoryUseCase
	UpdateCategory *finance.UpdateExpenseCategoryUseCase
	DeleteCategory *finance.DeleteExpenseCategoryUseCase

	CreateGoal *finance.CreateFinancialGoalUseCase
	UpdateGoal *finance.UpdateFinancialGoalUseCase
	DeleteGoal *finance.DeleteFinancialGoalUseCase

	CreateAccount *finance.CreateAccountUseCase
	UpdateAccount *finance.UpdateAccountUseCase
	DeleteAccount *finance.DeleteAccountUseCase

	CreateInvestment *finance.CreateInvestmentUseCase
	UpdateInvestment *finance.UpdateInvestmentUseCase
	DeleteInvestment *finance.DeleteInvestmentUseCase

	CreateBill *finance.CreateBillUseCase
	UpdateBill *finance.UpdateBillUseCase
	DeleteBill *finance.DeleteBillUseCase
	PayBill    *finance.PayBillUseCase
	SnoozeBill *finance.SnoozeBillUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(params FinanceControllerParams) *FinanceController {
	return &FinanceController{
		getFinancesUseCase:      params.GetFinances,
		updateFinancesUseCase:   params.UpdateFinances,
		createCategoryUseCase:   params.CreateCategory,
		updateCategoryUseCase:   params.UpdateCategory,
		deleteCategoryUseCase:   params.DeleteCategory,
		createGoalUseCase:       params.CreateGoal,
		updateGoalUseCase:       params.UpdateGoal,
		deleteGoalUseCase:       params.DeleteGoal,
		createAccountUseCase:    params.CreateAccount,
		updateAccountUseCase:    params.UpdateAccount,
		deleteAccountUseCase:    params.DeleteAccount,
		createInvestmentUseCase: params.CreateInvestment,
		updateInvestmentUseCase: params.UpdateInvestment,
		deleteInvestmentUseCase: params.DeleteInvestment,
		createBillUseCase:       params.CreateBill,
		updateBillUseCase:       params.UpdateBill,
		deleteBillUseCase:       params.DeleteBill,
		payBillUseCase:          params.PayBill,
		snoozeBillUseCase:       params.SnoozeBill,
	}
}

// userID extracts the request's user scope or writes a 400 response.
func (c *FinanceController) userID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "User scope missing",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID path parameter or writes a 400 response.
func (c *FinanceController) pathID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// Get handles GET /finances requests.
func (c *FinanceController) Get(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	output, err := c.getFinancesUseCase.Execute(ctx.Request.Context(), finance.GetFinancesInput{UserID: userID})
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	response := dto.ToFinancesOverviewResponse(
		output.Finances,
		output.Categories,
		output.FinancialGoals,
		output.Accounts,
		output.Investments,
		output.Bills,
	)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /finances requests.
func (c *FinanceController) Update(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFinancesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	input := finance.UpdateFinancesInput{
		UserID:        userID,
		Income:        req.Income,
		ReminderEmail: req.ReminderEmail,
	}

	output, err := c.updateFinancesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancesResponse(output.Finances))
}

// CreateCategory handles POST /finances/categories requests.
func (c *FinanceController) CreateCategory(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	input := finance.CreateExpenseCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
		Color:  req.Color,
	}

	output, err := c.createCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	category := dto.ToExpenseCategoryResponse(output.Category)
	ctx.JSON(http.StatusCreated, dto.ExpenseCategoryMutationResponse{
		Category: &category,
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// UpdateCategory handles PATCH /finances/categories/:id requests.
func (c *FinanceController) UpdateCategory(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	categoryID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := finance.UpdateExpenseCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       req.Name,
		Amount:     req.Amount,
		Color:      req.Color,
	}

	output, err := c.updateCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	category := dto.ToExpenseCategoryResponse(output.Category)
	ctx.JSON(http.StatusOK, dto.ExpenseCategoryMutationResponse{
		Category: &category,
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// DeleteCategory handles DELETE /finances/categories/:id requests.
func (c *FinanceController) DeleteCategory(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	categoryID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.DeleteExpenseCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	}

	output, err := c.deleteCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseCategoryMutationResponse{
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// CreateFinancialGoal handles POST /finances/goals requests.
func (c *FinanceController) CreateFinancialGoal(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.CreateFinancialGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	input := finance.CreateFinancialGoalInput{
		UserID:        userID,
		Name:          req.Name,
		Type:          entity.FinancialGoalOther,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
	}
	if req.Type != "" {
		input.Type = entity.FinancialGoalType(req.Type)
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFinancialGoalResponse(output.Goal))
}

// UpdateFinancialGoal handles PATCH /finances/goals/:id requests.
func (c *FinanceController) UpdateFinancialGoal(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	goalID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFinancialGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := finance.UpdateFinancialGoalInput{
		UserID:        userID,
		GoalID:        goalID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		Archived:      req.Archived,
	}
	if req.Type != nil {
		goalType := entity.FinancialGoalType(*req.Type)
		input.Type = &goalType
	}

	output, err := c.updateGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialGoalResponse(output.Goal))
}

// DeleteFinancialGoal handles DELETE /finances/goals/:id requests.
func (c *FinanceController) DeleteFinancialGoal(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	goalID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.DeleteFinancialGoalInput{
		UserID: userID,
		GoalID: goalID,
	}

	if err := c.deleteGoalUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateAccount handles POST /finances/accounts requests.
func (c *FinanceController) CreateAccount(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	input := finance.CreateAccountInput{
		UserID:            userID,
		Name:              req.Name,
		Type:              entity.AccountTypeOther,
		Balance:           req.Balance,
		InterestRate:      req.InterestRate,
		IncludeInNetWorth: true,
	}
	if req.Type != "" {
		input.Type = entity.AccountType(req.Type)
	}
	if req.IncludeInNetWorth != nil {
		input.IncludeInNetWorth = *req.IncludeInNetWorth
	}

	output, err := c.createAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	account := dto.ToAccountResponse(output.Account)
	ctx.JSON(http.StatusCreated, dto.AccountMutationResponse{
		Account:  &account,
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// UpdateAccount handles PATCH /finances/accounts/:id requests.
func (c *FinanceController) UpdateAccount(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	accountID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := finance.UpdateAccountInput{
		UserID:            userID,
		AccountID:         accountID,
		Name:              req.Name,
		Balance:           req.Balance,
		InterestRate:      req.InterestRate,
		IncludeInNetWorth: req.IncludeInNetWorth,
	}
	if req.Type != nil {
		accountType := entity.AccountType(*req.Type)
		input.Type = &accountType
	}

	output, err := c.updateAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	account := dto.ToAccountResponse(output.Account)
	ctx.JSON(http.StatusOK, dto.AccountMutationResponse{
		Account:  &account,
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// DeleteAccount handles DELETE /finances/accounts/:id requests.
func (c *FinanceController) DeleteAccount(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	accountID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.DeleteAccountInput{
		UserID:    userID,
		AccountID: accountID,
	}

	output, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AccountMutationResponse{
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// CreateInvestment handles POST /finances/investments requests.
func (c *FinanceController) CreateInvestment(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	input := finance.CreateInvestmentInput{
		UserID:        userID,
		Name:          req.Name,
		Type:          entity.InvestmentTypeOther,
		Value:         req.Value,
		PurchasePrice: req.PurchasePrice,
	}
	if req.Type != "" {
		input.Type = entity.InvestmentType(req.Type)
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse(financeDateLayout, req.PurchaseDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid purchase date format",
				Code:  string(domainerror.ErrCodeMissingFinanceFields),
			})
			return
		}
		input.PurchaseDate = purchaseDate
	}

	output, err := c.createInvestmentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	investment := dto.ToInvestmentResponse(output.Investment)
	ctx.JSON(http.StatusCreated, dto.InvestmentMutationResponse{
		Investment: &investment,
		Finances:   dto.ToFinancesResponse(output.Finances),
	})
}

// UpdateInvestment handles PATCH /finances/investments/:id requests.
func (c *FinanceController) UpdateInvestment(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	investmentID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := finance.UpdateInvestmentInput{
		UserID:        userID,
		InvestmentID:  investmentID,
		Name:          req.Name,
		Value:         req.Value,
		PurchasePrice: req.PurchasePrice,
	}
	if req.Type != nil {
		investmentType := entity.InvestmentType(*req.Type)
		input.Type = &investmentType
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := time.Parse(financeDateLayout, *req.PurchaseDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid purchase date format",
			})
			return
		}
		input.PurchaseDate = &purchaseDate
	}

	output, err := c.updateInvestmentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	investment := dto.ToInvestmentResponse(output.Investment)
	ctx.JSON(http.StatusOK, dto.InvestmentMutationResponse{
		Investment: &investment,
		Finances:   dto.ToFinancesResponse(output.Finances),
	})
}

// DeleteInvestment handles DELETE /finances/investments/:id requests.
func (c *FinanceController) DeleteInvestment(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	investmentID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.DeleteInvestmentInput{
		UserID:       userID,
		InvestmentID: investmentID,
	}

	output, err := c.deleteInvestmentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InvestmentMutationResponse{
		Finances: dto.ToFinancesResponse(output.Finances),
	})
}

// CreateBill handles POST /finances/bills requests.
func (c *FinanceController) CreateBill(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	nextDueDate, err := time.Parse(financeDateLayout, req.NextDueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid next due date format",
			Code:  string(domainerror.ErrCodeMissingFinanceFields),
		})
		return
	}

	input := finance.CreateBillInput{
		UserID:       userID,
		Name:         req.Name,
		Amount:       req.Amount,
		Frequency:    entity.BillFrequencyMonthly,
		CustomDays:   req.CustomDays,
		NextDueDate:  nextDueDate,
		ReminderDays: 3,
	}
	if req.Frequency != "" {
		input.Frequency = entity.BillFrequency(req.Frequency)
	}
	if req.ReminderDays != nil {
		input.ReminderDays = *req.ReminderDays
	}

	output, err := c.createBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringBillResponse(output.Bill))
}

// UpdateBill handles PATCH /finances/bills/:id requests.
func (c *FinanceController) UpdateBill(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	billID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := finance.UpdateBillInput{
		UserID:       userID,
		BillID:       billID,
		Name:         req.Name,
		Amount:       req.Amount,
		CustomDays:   req.CustomDays,
		ReminderDays: req.ReminderDays,
	}
	if req.Frequency != nil {
		frequency := entity.BillFrequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.NextDueDate != nil {
		nextDueDate, err := time.Parse(financeDateLayout, *req.NextDueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid next due date format",
			})
			return
		}
		input.NextDueDate = &nextDueDate
	}

	output, err := c.updateBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringBillResponse(output.Bill))
}

// DeleteBill handles DELETE /finances/bills/:id requests.
func (c *FinanceController) DeleteBill(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	billID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.DeleteBillInput{
		UserID: userID,
		BillID: billID,
	}

	if err := c.deleteBillUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PayBill handles POST /finances/bills/:id/pay requests.
func (c *FinanceController) PayBill(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	billID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.PayBillInput{
		UserID: userID,
		BillID: billID,
	}

	output, err := c.payBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringBillResponse(output.Bill))
}

// SnoozeBill handles POST /finances/bills/:id/snooze requests.
func (c *FinanceController) SnoozeBill(ctx *gin.Context) {
	userID, ok := c.userID(ctx)
	if !ok {
		return
	}
	billID, ok := c.pathID(ctx, "id")
	if !ok {
		return
	}

	input := finance.SnoozeBillInput{
		UserID: userID,
		BillID: billID,
	}

	output, err := c.snoozeBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringBillResponse(output.Bill))
}

// handleFinanceError handles finance errors and returns appropriate HTTP responses.
func (c *FinanceController) handleFinanceError(ctx *gin.Context, err error) {
	var financeErr *domainerror.FinanceError
	if errors.As(err, &financeErr) {
		statusCode := c.getStatusCodeForFinanceError(financeErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: financeErr.Message,
			Code:  string(financeErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFinanceError maps finance error codes to HTTP status codes.
func (c *FinanceController) getStatusCodeForFinanceError(code domainerror.FinanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeFinancesNotFound,
		domainerror.ErrCodeExpenseCategoryNotFound,
		domainerror.ErrCodeFinancialGoalNotFound,
		domainerror.ErrCodeAccountNotFound,
		domainerror.ErrCodeInvestmentNotFound,
		domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedFinancesAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidFinancialGoalType,
		domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeInvalidInvestmentType,
		domainerror.ErrCodeInvalidBillFrequency,
		domainerror.ErrCodeMissingFinanceFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
