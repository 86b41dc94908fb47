// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	taskController     *controller.TaskController
	habitController    *controller.HabitController
	goalController     *controller.GoalController
	financeController  *controller.FinanceController
	calendarController *controller.CalendarController
	rateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	taskController *controller.TaskController,
	habitController *controller.HabitController,
	goalController *controller.GoalController,
	financeController *controller.FinanceController,
	calendarController *controller.CalendarController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		taskController:     taskController,
		habitController:    habitController,
		goalController:     goalController,
		financeController:  financeController,
		calendarController: calendarController,
		rateLimiter:        rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every data route is scoped
// to the user named by the X-User-ID header.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	v1.Use(middleware.UserScope())
	{
		// Task routes
		if r.taskController != nil {
			tasks := v1.Group("/tasks")
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.DELETE("/:id", r.taskController.Delete)
			}
		}

		// Habit routes
		if r.habitController != nil {
			habits := v1.Group("/habits")
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.PATCH("/:id", r.habitController.Update)
				habits.POST("/:id/toggle", r.habitController.ToggleDay)
				habits.DELETE("/:id", r.habitController.Delete)
			}
		}

		// Goal routes
		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.POST("/:id/milestones/:milestoneId/toggle", r.goalController.ToggleMilestone)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Finance routes
		if r.financeController != nil {
			finances := v1.Group("/finances")
			{
				finances.GET("", r.financeController.Get)
				finances.PATCH("", r.financeController.Update)

				finances.POST("/categories", r.financeController.CreateCategory)
				finances.PATCH("/categories/:id", r.financeController.UpdateCategory)
				finances.DELETE("/categories/:id", r.financeController.DeleteCategory)

				finances.POST("/goals", r.financeController.CreateFinancialGoal)
				finances.PATCH("/goals/:id", r.financeController.UpdateFinancialGoal)
				finances.DELETE("/goals/:id", r.financeController.DeleteFinancialGoal)

				finances.POST("/accounts", r.financeController.CreateAccount)
				finances.PATCH("/accounts/:id", r.financeController.UpdateAccount)
				finances.DELETE("/accounts/:id", r.financeController.DeleteAccount)

				finances.POST("/investments", r.financeController.CreateInvestment)
				finances.PATCH("/investments/:id", r.financeController.UpdateInvestment)
				finances.DELETE("/investments/:id", r.financeController.DeleteInvestment)

				finances.POST("/bills", r.financeController.CreateBill)
				finances.PATCH("/bills/:id", r.financeController.UpdateBill)
				finances.DELETE("/bills/:id", r.financeController.DeleteBill)
				finances.POST("/bills/:id/pay", r.financeController.PayBill)
				finances.POST("/bills/:id/snooze", r.financeController.SnoozeBill)
			}
		}

		// Calendar routes
		if r.calendarController != nil {
			v1.GET("/calendar", r.calendarController.Get)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
