// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/application/usecase/debt"
	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	"github.com/finance-tracker/planner/internal/application/usecase/review"
	"github.com/finance-tracker/planner/internal/application/usecase/subscription"
	"github.com/finance-tracker/planner/internal/application/usecase/transaction"
	"github.com/finance-tracker/planner/internal/infra/server/router"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/email"
	"github.com/finance-tracker/planner/internal/integration/email/templates"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/planner/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	DB                 *gorm.DB
	Redis              *redis.Client
	Router             *router.Router
	InsightRateLimiter *middleware.RateLimiter
}

// Option overrides an external collaborator, mostly for tests.
type Option func(*overrides)

type overrides struct {
	aiService   adapter.AIInsightService
	emailSender adapter.EmailSender
	clock       adapter.Clock
	dbHealth    func() bool
}

// WithAIService replaces the Gemini insight service.
func WithAIService(s adapter.AIInsightService) Option {
	return func(o *overrides) { o.aiService = s }
}

// WithEmailSender replaces the Resend email client.
func WithEmailSender(s adapter.EmailSender) Option {
	return func(o *overrides) { o.emailSender = s }
}

// WithClock replaces the system clock.
func WithClock(c adapter.Clock) Option {
	return func(o *overrides) { o.clock = c }
}

// WithDBHealthChecker replaces the database ping used by /health.
func WithDBHealthChecker(check func() bool) Option {
	return func(o *overrides) { o.dbHealth = check }
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) (*Injector, error) {
	o := &overrides{}
	for _, opt := range opts {
		opt(o)
	}

	budgetDefaults, err := config.LoadBudgetDefaults(cfg.Budgets.DefaultsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget defaults: %w", err)
	}
	envelopes := toEnvelopes(budgetDefaults)

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)

	// Create adapters/services
	var clock adapter.Clock = adapters.SystemClock{}
	if o.clock != nil {
		clock = o.clock
	}

	var aiService adapter.AIInsightService = adapters.NewGeminiService(adapters.GeminiConfig{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	})
	if o.aiService != nil {
		aiService = o.aiService
	}

	var emailSender adapter.EmailSender
	if o.emailSender != nil {
		emailSender = o.emailSender
	} else {
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if cfg.Email.ResendBaseURL != "" {
			if err := resendClient.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
				return nil, err
			}
		}
		emailSender = resendClient
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailService := email.NewService(emailSender, renderer, cfg.Email.AppBaseURL)

	insightCache := adapters.NewRedisInsightCache(redisClient, cfg.Insights.CacheTTL)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, clock)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, clock)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, clock)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo, clock, envelopes)
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, envelopes)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo, clock)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, clock)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo)
	getMonthlyTrendsUseCase := dashboard.NewGetMonthlyTrendsUseCase(transactionRepo)
	getDataRangeUseCase := dashboard.NewGetDataRangeUseCase(transactionRepo)

	// Create review use cases
	getMonthlyReviewUseCase := review.NewGetMonthlyReviewUseCase(transactionRepo, goalRepo, budgetRepo, clock, envelopes)
	emailMonthlyReviewUseCase := review.NewEmailMonthlyReviewUseCase(getMonthlyReviewUseCase, emailService)

	// Create insight and subscription use cases
	generateInsightsUseCase := insight.NewGenerateInsightsUseCase(
		transactionRepo, budgetRepo, goalRepo, subscriptionRepo,
		aiService, insightCache, clock, envelopes,
		insight.Options{
			LookbackDays:   cfg.Insights.LookbackDays,
			RequirePremium: cfg.Insights.RequirePremium,
		},
	)
	getSubscriptionUseCase := subscription.NewGetSubscriptionUseCase(subscriptionRepo, clock)

	// Create controllers
	dbHealth := o.dbHealth
	if dbHealth == nil {
		dbHealth = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	healthController := controller.NewHealthController(clock,
		controller.HealthCheck{
			Name:  "database",
			Check: func(context.Context) bool { return dbHealth() },
		},
		controller.HealthCheck{
			Name: "redis",
			Check: func(ctx context.Context) bool {
				return redisClient != nil && redisClient.Ping(ctx).Err() == nil
			},
		},
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		deleteGoalUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		upsertBudgetUseCase,
		deleteBudgetUseCase,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		deleteDebtUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getMonthlyTrendsUseCase,
		getDataRangeUseCase,
	)

	reviewController := controller.NewReviewController(getMonthlyReviewUseCase, emailMonthlyReviewUseCase)
	insightController := controller.NewInsightController(generateInsightsUseCase)
	subscriptionController := controller.NewSubscriptionController(getSubscriptionUseCase)

	// Create middleware
	insightRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Insights.RateLimit, cfg.Insights.RateLimitWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		goalController,
		budgetController,
		debtController,
		dashboardController,
		reviewController,
		insightController,
		subscriptionController,
		insightRateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config:             cfg,
		DB:                 db,
		Redis:              redisClient,
		Router:             r,
		InsightRateLimiter: insightRateLimiter,
	}, nil
}

func toEnvelopes(defaults *config.BudgetDefaults) []budget.DefaultEnvelope {
	envelopes := make([]budget.DefaultEnvelope, 0, len(defaults.Budgets))
	for _, b := range defaults.Budgets {
		envelopes = append(envelopes, budget.DefaultEnvelope{
			Name:       b.Name,
			Limit:      b.Limit,
			Categories: b.Categories,
		})
	}
	return envelopes
}
