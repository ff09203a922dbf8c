// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fintrack/backend/config"
	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/application/usecase/auth"
	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	"github.com/fintrack/backend/internal/application/usecase/expense"
	"github.com/fintrack/backend/internal/application/usecase/export"
	"github.com/fintrack/backend/internal/application/usecase/income"
	"github.com/fintrack/backend/internal/application/usecase/investment"
	"github.com/fintrack/backend/internal/application/usecase/preference"
	"github.com/fintrack/backend/internal/application/usecase/subscription"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/adapters"
	"github.com/fintrack/backend/internal/integration/email"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
	"github.com/fintrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthCheck, redisHealthCheck func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	preferenceStore := persistence.NewPreferenceStore(redisClient)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create entry use cases
	addIncomeUseCase := income.NewAddIncomeUseCase(incomeRepo)
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	editIncomeUseCase := income.NewEditIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	addExpenseUseCase := expense.NewAddExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	editExpenseUseCase := expense.NewEditExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	addInvestmentUseCase := investment.NewAddInvestmentUseCase(investmentRepo)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	editInvestmentUseCase := investment.NewEditInvestmentUseCase(investmentRepo)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)

	addSubscriptionUseCase := subscription.NewAddSubscriptionUseCase(subscriptionRepo)
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
	editSubscriptionUseCase := subscription.NewEditSubscriptionUseCase(subscriptionRepo)
	deleteSubscriptionUseCase := subscription.NewDeleteSubscriptionUseCase(subscriptionRepo)

	// Create dashboard, preference and export use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(incomeRepo, expenseRepo, investmentRepo, subscriptionRepo, preferenceStore)
	recentTransactionsUseCase := dashboard.NewRecentTransactionsUseCase(incomeRepo, expenseRepo, investmentRepo)
	getPreferencesUseCase := preference.NewGetPreferencesUseCase(preferenceStore)
	updatePreferencesUseCase := preference.NewUpdatePreferencesUseCase(preferenceStore)
	exportEntriesUseCase := export.NewExportEntriesUseCase(incomeRepo, expenseRepo, investmentRepo, subscriptionRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthCheck, redisHealthCheck)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	incomeController := controller.NewIncomeController(
		addIncomeUseCase,
		listIncomesUseCase,
		editIncomeUseCase,
		deleteIncomeUseCase,
	)

	expenseController := controller.NewExpenseController(
		addExpenseUseCase,
		listExpensesUseCase,
		editExpenseUseCase,
		deleteExpenseUseCase,
	)

	investmentController := controller.NewInvestmentController(
		addInvestmentUseCase,
		listInvestmentsUseCase,
		editInvestmentUseCase,
		deleteInvestmentUseCase,
	)

	subscriptionController := controller.NewSubscriptionController(
		addSubscriptionUseCase,
		listSubscriptionsUseCase,
		editSubscriptionUseCase,
		deleteSubscriptionUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase, recentTransactionsUseCase)
	preferenceController := controller.NewPreferenceController(getPreferencesUseCase, updatePreferencesUseCase)
	exportController := controller.NewExportController(exportEntriesUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		incomeController,
		expenseController,
		investmentController,
		subscriptionController,
		dashboardController,
		preferenceController,
		exportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
