// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

var hundred = decimal.NewFromInt(100)

// ListBudgetsInput represents the input for listing budgets with their actuals.
// A zero Year or Month selects the current month.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// BudgetOutput is a budget together with the spending of the period.
type BudgetOutput struct {
	Budget       *entity.Budget
	Actual       decimal.Decimal
	Remaining    decimal.Decimal // Negative when exceeded
	UsagePercent decimal.Decimal // Zero for unconfigured budgets
	IsExceeded   bool
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Budgets     []*BudgetOutput
}

// ListBudgetsUseCase handles listing budgets with budget-vs-actual figures.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	defaults        []DefaultEnvelope
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	defaults []DefaultEnvelope,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
		defaults:        defaults,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	year, month := input.Year, input.Month
	if year == 0 && month == 0 {
		now := uc.clock.Now()
		year, month = now.Year(), now.Month()
	}
	if year < 1 || month < time.January || month > time.December {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"year and month must identify a calendar month",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	start, end := finance.MonthBounds(year, month)

	stored, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	expenseType := entity.TransactionTypeExpense
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
		Type:      &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	values := make([]entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		values = append(values, *tx)
	}

	budgets := WithDefaults(input.UserID, stored, uc.defaults)
	output := &ListBudgetsOutput{
		PeriodStart: start,
		PeriodEnd:   end,
		Budgets:     make([]*BudgetOutput, 0, len(budgets)),
	}
	for _, b := range budgets {
		output.Budgets = append(output.Budgets, toBudgetOutput(b, values))
	}

	return output, nil
}

func toBudgetOutput(b *entity.Budget, transactions []entity.Transaction) *BudgetOutput {
	actual := finance.BudgetActual(transactions, finance.NewCategorySet(b.Categories...))

	out := &BudgetOutput{
		Budget:       b,
		Actual:       actual,
		Remaining:    b.Limit.Sub(actual),
		UsagePercent: decimal.Zero,
	}
	if b.IsConfigured() {
		out.UsagePercent = actual.Div(b.Limit).Mul(hundred).Round(2)
		out.IsExceeded = actual.GreaterThan(b.Limit)
	}
	return out
}
