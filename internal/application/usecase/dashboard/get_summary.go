// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetSummaryOutput represents the dashboard summary of a period.
type GetSummaryOutput struct {
	StartDate         time.Time
	EndDate           time.Time
	Totals            finance.TotalsSummary
	ExpenseCategories []finance.CategoryTotal
	IncomeCategories  []finance.CategoryTotal
	Balance           []finance.BalancePoint
	TransactionCount  int
}

// GetSummaryUseCase handles the dashboard summary: totals, category
// breakdowns and the running balance series.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the summary for the given period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if err := validatePeriod(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := loadPeriod(ctx, uc.transactionRepo, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Totals:            finance.Totals(transactions),
		ExpenseCategories: finance.CategoryShares(transactions, entity.TransactionTypeExpense),
		IncomeCategories:  finance.CategoryShares(transactions, entity.TransactionTypeIncome),
		Balance:           finance.RunningBalance(transactions),
		TransactionCount:  len(transactions),
	}, nil
}

// loadPeriod fetches a user's transactions between two calendar days.
func loadPeriod(
	ctx context.Context,
	repo adapter.TransactionRepository,
	userID uuid.UUID,
	startDate, endDate time.Time,
) ([]entity.Transaction, error) {
	start, end := entity.DateOnly(startDate), entity.DateOnly(endDate)
	stored, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    userID,
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
	return finance.FilterPeriod(transactions, start, end), nil
}
