// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	goalController         *controller.GoalController
	budgetController       *controller.BudgetController
	debtController         *controller.DebtController
	dashboardController    *controller.DashboardController
	reviewController       *controller.ReviewController
	insightController      *controller.InsightController
	subscriptionController *controller.SubscriptionController
	insightRateLimiter     *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	allowedOrigins         []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	budgetController *controller.BudgetController,
	debtController *controller.DebtController,
	dashboardController *controller.DashboardController,
	reviewController *controller.ReviewController,
	insightController *controller.InsightController,
	subscriptionController *controller.SubscriptionController,
	insightRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		goalController:         goalController,
		budgetController:       budgetController,
		debtController:         debtController,
		dashboardController:    dashboardController,
		reviewController:       reviewController,
		insightController:      insightController,
		subscriptionController: subscriptionController,
		insightRateLimiter:     insightRateLimiter,
		authMiddleware:         authMiddleware,
		allowedOrigins:         allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(r.corsMiddleware())

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// corsMiddleware allows the web client origins to call the API with a bearer token.
func (r *Router) corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(r.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = r.allowedOrigins
	}
	return cors.New(cfg)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	authed := v1.Group("")
	authed.Use(r.authMiddleware.Authenticate())

	transactions := authed.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	goals := authed.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.DELETE("/:id", r.goalController.Delete)
	}

	budgets := authed.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.PUT("", r.budgetController.Upsert)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	debts := authed.Group("/debts")
	{
		debts.GET("", r.debtController.List)
		debts.POST("", r.debtController.Create)
		debts.DELETE("/:id", r.debtController.Delete)
	}

	dashboard := authed.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/monthly", r.dashboardController.GetMonthly)
		dashboard.GET("/data-range", r.dashboardController.GetDataRange)
	}

	reviews := authed.Group("/reviews")
	{
		reviews.GET("/monthly", r.reviewController.GetMonthly)
		reviews.POST("/monthly/email", r.reviewController.EmailMonthly)
	}

	authed.POST("/insights", r.insightRateLimiter.Middleware(), r.insightController.Generate)
	authed.GET("/subscription", r.subscriptionController.Get)
}
