// Package insight contains the AI insight use cases.
package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// DefaultLookbackDays is used when no lookback is configured.
const DefaultLookbackDays = 90

// Options configures insight generation.
type Options struct {
	LookbackDays   int
	RequirePremium bool
}

// GenerateInsightsInput represents the input for generating insights.
type GenerateInsightsInput struct {
	UserID uuid.UUID
}

// GenerateInsightsOutput represents the generated (or cached) insights.
type GenerateInsightsOutput struct {
	Insight *entity.AIInsight
	Cached  bool
}

// GenerateInsightsUseCase builds a snapshot of the user's finances and asks
// the AI service for tips, forecasts and a summary. Results are cached by
// snapshot fingerprint.
type GenerateInsightsUseCase struct {
	transactionRepo  adapter.TransactionRepository
	budgetRepo       adapter.BudgetRepository
	goalRepo         adapter.GoalRepository
	subscriptionRepo adapter.SubscriptionRepository
	aiService        adapter.AIInsightService
	cache            adapter.InsightCache
	clock            adapter.Clock
	defaults         []budget.DefaultEnvelope
	options          Options
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
	subscriptionRepo adapter.SubscriptionRepository,
	aiService adapter.AIInsightService,
	cache adapter.InsightCache,
	clock adapter.Clock,
	defaults []budget.DefaultEnvelope,
	options Options,
) *GenerateInsightsUseCase {
	if options.LookbackDays <= 0 {
		options.LookbackDays = DefaultLookbackDays
	}

	return &GenerateInsightsUseCase{
		transactionRepo:  transactionRepo,
		budgetRepo:       budgetRepo,
		goalRepo:         goalRepo,
		subscriptionRepo: subscriptionRepo,
		aiService:        aiService,
		cache:            cache,
		clock:            clock,
		defaults:         defaults,
		options:          options,
	}
}

// Execute generates the insights.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightServiceUnavailable,
			"AI insight service is not configured",
			domainerror.ErrInsightServiceUnavailable,
		)
	}

	now := uc.clock.Now()

	if uc.options.RequirePremium {
		subscription, err := uc.subscriptionRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if !subscription.IsPremium(now) {
			return nil, domainerror.NewInsightError(
				domainerror.ErrCodePremiumRequired,
				"AI insights require an active premium subscription",
				domainerror.ErrPremiumRequired,
			)
		}
	}

	snapshot, err := uc.buildSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	key, err := cacheKey(input.UserID, snapshot)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Insight cache lookup failed", "user_id", input.UserID, "error", err)
		} else if cached != nil {
			return &GenerateInsightsOutput{Insight: cached, Cached: true}, nil
		}
	}

	insight, err := uc.aiService.Generate(ctx, snapshot)
	if err == nil {
		err = validateInsight(insight)
	}
	if err != nil {
		processingErr := classifyError(err, now)
		slog.Error("Insight generation failed",
			"user_id", input.UserID,
			"code", processingErr.Code,
			"retryable", processingErr.Retryable,
			"error", err,
		)
		return nil, processingErr
	}

	if insight.GeneratedAt.IsZero() {
		insight.GeneratedAt = now
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, insight); err != nil {
			slog.Warn("Failed to cache insight", "user_id", input.UserID, "error", err)
		}
	}

	slog.Info("Insights generated",
		"user_id", input.UserID,
		"transactions", len(snapshot.Transactions),
		"tips", len(insight.Dicas),
	)

	return &GenerateInsightsOutput{Insight: insight}, nil
}

// buildSnapshot loads the lookback window of transactions, the budgets with
// this month's spending and the goals with their projections.
func (uc *GenerateInsightsUseCase) buildSnapshot(ctx context.Context, userID uuid.UUID) (*adapter.InsightSnapshot, error) {
	now := uc.clock.Now()
	end := entity.DateOnly(now)
	start := end.AddDate(0, 0, -uc.options.LookbackDays)

	stored, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	storedBudgets, err := uc.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	snapshot := &adapter.InsightSnapshot{
		Transactions: make([]adapter.InsightTransaction, 0, len(stored)),
		Budgets:      make([]adapter.InsightBudget, 0, len(storedBudgets)),
		Goals:        make([]adapter.InsightGoal, 0, len(goals)),
	}

	transactions := make([]entity.Transaction, 0, len(stored))
	for _, tx := range stored {
		transactions = append(transactions, *tx)
		snapshot.Transactions = append(snapshot.Transactions, adapter.InsightTransaction{
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Type:        string(tx.Type),
			Category:    tx.Category,
			IsFixed:     tx.IsFixed,
		})
	}

	monthStart, monthEnd := finance.MonthBounds(now.Year(), now.Month())
	thisMonth := finance.FilterPeriod(transactions, monthStart, monthEnd)
	for _, b := range budget.WithDefaults(userID, storedBudgets, uc.defaults) {
		spent := finance.BudgetActual(thisMonth, finance.NewCategorySet(b.Categories...))
		snapshot.Budgets = append(snapshot.Budgets, adapter.InsightBudget{
			Name:       b.Name,
			Limit:      b.Limit.StringFixed(2),
			Spent:      spent.StringFixed(2),
			Categories: b.Categories,
		})
	}

	for _, g := range goals {
		projection, err := finance.EvaluateGoal(*g, now)
		if err != nil {
			slog.Warn("Skipping goal in insight snapshot", "goal_id", g.ID, "error", err)
			continue
		}
		snapshot.Goals = append(snapshot.Goals, adapter.InsightGoal{
			Name:               g.Name,
			DueDate:            g.DueDate.Format("2006-01-02"),
			IsFinancialFreedom: g.IsFinancialFreedom,
			TargetValue:        projection.TargetValue,
			CurrentValue:       projection.CurrentValue,
			ProgressPercent:    projection.ProgressPercentClamped,
			Status:             string(projection.Status),
		})
	}

	return snapshot, nil
}

// cacheKey fingerprints a snapshot: identical finances share a cached reply.
func cacheKey(userID uuid.UUID, snapshot *adapter.InsightSnapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal insight snapshot: %w", err)
	}

	sum := sha256.Sum256(data)
	return "insights:" + userID.String() + ":" + hex.EncodeToString(sum[:]), nil
}

// validateInsight checks the shape of the generator's reply.
func validateInsight(insight *entity.AIInsight) error {
	switch {
	case insight == nil:
		return fmt.Errorf("empty reply: %w", domainerror.ErrMalformedInsight)
	case strings.TrimSpace(insight.Resumo) == "":
		return fmt.Errorf("resumo is empty: %w", domainerror.ErrMalformedInsight)
	case insight.Dicas == nil || insight.Previsoes == nil:
		return fmt.Errorf("dicas and previsoes are required: %w", domainerror.ErrMalformedInsight)
	}
	return nil
}
