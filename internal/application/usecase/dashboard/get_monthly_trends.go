// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// GetMonthlyTrendsInput represents the input for getting monthly trends.
type GetMonthlyTrendsInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// TrendPoint represents the figures of a single month.
type TrendPoint struct {
	Year        int
	Month       time.Month
	Key         string // YYYY-MM
	PeriodLabel string
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Balance     decimal.Decimal
}

// GetMonthlyTrendsOutput represents the output of getting monthly trends.
type GetMonthlyTrendsOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Trends    []TrendPoint
}

// GetMonthlyTrendsUseCase handles getting income/expense trends per month.
type GetMonthlyTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlyTrendsUseCase creates a new GetMonthlyTrendsUseCase instance.
func NewGetMonthlyTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyTrendsUseCase {
	return &GetMonthlyTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves monthly income/expense trends. Months without
// transactions are included with zero values.
func (uc *GetMonthlyTrendsUseCase) Execute(
	ctx context.Context,
	input GetMonthlyTrendsInput,
) (*GetMonthlyTrendsOutput, error) {
	if err := validatePeriod(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	transactions, err := loadPeriod(ctx, uc.transactionRepo, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]finance.MonthlySummary)
	for _, m := range finance.MonthlyBreakdown(transactions) {
		byMonth[m.Label] = m
	}

	periods := GenerateMonthSeries(input.StartDate, input.EndDate)
	trends := make([]TrendPoint, 0, len(periods))
	for _, period := range periods {
		summary, ok := byMonth[finance.NewMonthlySummary(period.Year, period.Month).Label]
		if !ok {
			summary = finance.NewMonthlySummary(period.Year, period.Month)
		}
		trends = append(trends, TrendPoint{
			Year:        period.Year,
			Month:       period.Month,
			Key:         summary.Label,
			PeriodLabel: period.PeriodLabel,
			Income:      summary.Income,
			Expenses:    summary.Expense,
			Balance:     summary.Income.Sub(summary.Expense),
		})
	}

	return &GetMonthlyTrendsOutput{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Trends:    trends,
	}, nil
}
