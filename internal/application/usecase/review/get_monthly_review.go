// Package review contains the monthly review use cases.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetMonthlyReviewInput represents the input for the monthly review.
type GetMonthlyReviewInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// GetMonthlyReviewOutput represents the scored review of a month.
type GetMonthlyReviewOutput struct {
	Year        int
	Month       time.Month
	PeriodStart time.Time
	PeriodEnd   time.Time
	Totals      finance.TotalsSummary
	Score       int
	Insights    []finance.Insight
}

// GetMonthlyReviewUseCase computes the consistency score of a month.
type GetMonthlyReviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	budgetRepo      adapter.BudgetRepository
	clock           adapter.Clock
	defaults        []budget.DefaultEnvelope
}

// NewGetMonthlyReviewUseCase creates a new GetMonthlyReviewUseCase instance.
func NewGetMonthlyReviewUseCase(
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
	clock adapter.Clock,
	defaults []budget.DefaultEnvelope,
) *GetMonthlyReviewUseCase {
	return &GetMonthlyReviewUseCase{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		budgetRepo:      budgetRepo,
		clock:           clock,
		defaults:        defaults,
	}
}

// Execute performs the monthly review. A zero Year or Month selects the current month.
func (uc *GetMonthlyReviewUseCase) Execute(ctx context.Context, input GetMonthlyReviewInput) (*GetMonthlyReviewOutput, error) {
	now := uc.clock.Now()

	year, month := input.Year, input.Month
	if year == 0 && month == 0 {
		year, month = now.Year(), now.Month()
	}
	if year < 1 || month < time.January || month > time.December {
		return nil, domainerror.NewReviewError(
			domainerror.ErrCodeInvalidReviewPeriod,
			"year and month must identify a calendar month",
			domainerror.ErrInvalidReviewPeriod,
		)
	}

	start, end := finance.MonthBounds(year, month)

	stored, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	transactions := make([]entity.Transaction, 0, len(stored))
	for _, tx := range stored {
		transactions = append(transactions, *tx)
	}
	transactions = finance.FilterPeriod(transactions, start, end)

	storedGoals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	goals := make([]entity.Goal, 0, len(storedGoals))
	for _, g := range storedGoals {
		goals = append(goals, *g)
	}

	storedBudgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	budgets := budget.WithDefaults(input.UserID, storedBudgets, uc.defaults)
	limits := make([]finance.BudgetLimit, 0, len(budgets))
	for _, b := range budgets {
		limits = append(limits, finance.BudgetLimitFromBudget(*b))
	}

	result := finance.EvaluateReview(finance.ReviewInput{
		PeriodStart:  start,
		Transactions: transactions,
		Goals:        goals,
		Budgets:      limits,
		Now:          now,
	})

	return &GetMonthlyReviewOutput{
		Year:        year,
		Month:       month,
		PeriodStart: start,
		PeriodEnd:   end,
		Totals:      finance.Totals(transactions),
		Score:       result.Score,
		Insights:    result.Insights,
	}, nil
}
