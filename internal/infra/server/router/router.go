// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	incomeController       *controller.IncomeController
	expenseController      *controller.ExpenseController
	investmentController   *controller.InvestmentController
	subscriptionController *controller.SubscriptionController
	dashboardController    *controller.DashboardController
	preferenceController   *controller.PreferenceController
	exportController       *controller.ExportController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	investmentController *controller.InvestmentController,
	subscriptionController *controller.SubscriptionController,
	dashboardController *controller.DashboardController,
	preferenceController *controller.PreferenceController,
	exportController *controller.ExportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		incomeController:       incomeController,
		expenseController:      expenseController,
		investmentController:   investmentController,
		subscriptionController: subscriptionController,
		dashboardController:    dashboardController,
		preferenceController:   preferenceController,
		exportController:       exportController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
		}

		incomes := v1.Group("/incomes")
		incomes.Use(r.authMiddleware.Authenticate())
		{
			incomes.GET("", r.incomeController.List)
			incomes.POST("", r.incomeController.Add)
			incomes.PUT("/:id", r.incomeController.Edit)
			incomes.DELETE("/:id", r.incomeController.Delete)
		}

		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Add)
			expenses.PUT("/:id", r.expenseController.Edit)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		investments := v1.Group("/investments")
		investments.Use(r.authMiddleware.Authenticate())
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", r.investmentController.Add)
			investments.PUT("/:id", r.investmentController.Edit)
			investments.DELETE("/:id", r.investmentController.Delete)
		}

		subscriptions := v1.Group("/subscriptions")
		subscriptions.Use(r.authMiddleware.Authenticate())
		{
			subscriptions.GET("", r.subscriptionController.List)
			subscriptions.POST("", r.subscriptionController.Add)
			subscriptions.PUT("/:id", r.subscriptionController.Edit)
			subscriptions.DELETE("/:id", r.subscriptionController.Delete)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/summary", r.dashboardController.Summary)
			dashboard.GET("/recent", r.dashboardController.Recent)
		}

		preferences := v1.Group("/preferences")
		preferences.Use(r.authMiddleware.Authenticate())
		{
			preferences.GET("", r.preferenceController.Get)
			preferences.PATCH("", r.preferenceController.Update)
		}

		export := v1.Group("/export")
		export.Use(r.authMiddleware.Authenticate())
		{
			export.GET("/:entity", r.exportController.Download)
		}
	}
}
