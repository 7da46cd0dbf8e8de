package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// TotalsResponse represents income, expense and balance totals.
type TotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// CategoryTotalResponse represents one category of the breakdown.
type CategoryTotalResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// BalancePointResponse represents one step of the running balance.
type BalancePointResponse struct {
	Date           string `json:"date"`
	TransactionID  string `json:"transaction_id"`
	RunningBalance string `json:"running_balance"`
}

// SummaryResponse represents the response for the dashboard summary API.
type SummaryResponse struct {
	Data SummaryData `json:"data"`
}

// SummaryData represents the data section of the summary response.
type SummaryData struct {
	StartDate         string                  `json:"start_date"`
	EndDate           string                  `json:"end_date"`
	Totals            TotalsResponse          `json:"totals"`
	ExpenseCategories []CategoryTotalResponse `json:"expense_categories"`
	IncomeCategories  []CategoryTotalResponse `json:"income_categories"`
	Balance           []BalancePointResponse  `json:"balance"`
	TransactionCount  int                     `json:"transaction_count"`
}

// MonthlyTrendsResponse represents the response for the monthly breakdown API.
type MonthlyTrendsResponse struct {
	Data MonthlyTrendsData `json:"data"`
}

// MonthlyTrendsData represents the data section of the monthly breakdown response.
type MonthlyTrendsData struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Trends    []TrendPointResponse `json:"trends"`
}

// TrendPointResponse represents a single month in the response.
type TrendPointResponse struct {
	Month       string `json:"month"`
	PeriodLabel string `json:"period_label"`
	Income      string `json:"income"`
	Expenses    string `json:"expenses"`
	Balance     string `json:"balance"`
}

// DataRangeResponse represents the response for the data range API.
type DataRangeResponse struct {
	Data DataRangeData `json:"data"`
}

// DataRangeData represents the data section of the data range response.
type DataRangeData struct {
	OldestDate *string `json:"oldest_date"`
	NewestDate *string `json:"newest_date"`
	HasData    bool    `json:"has_data"`
}

// ToTotalsResponse converts ledger totals to their response form.
func ToTotalsResponse(t finance.TotalsSummary) TotalsResponse {
	return TotalsResponse{
		Income:   money(t.Income),
		Expenses: money(t.Expenses),
		Balance:  money(t.Balance),
	}
}

func toCategoryTotals(totals []finance.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, len(totals))
	for i, c := range totals {
		out[i] = CategoryTotalResponse{
			Category:   c.Category,
			Amount:     money(c.Amount),
			Count:      c.Count,
			Percentage: money(c.Percentage),
		}
	}
	return out
}

// ToSummaryResponse converts a GetSummaryOutput to SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	balance := make([]BalancePointResponse, len(output.Balance))
	for i, p := range output.Balance {
		balance[i] = BalancePointResponse{
			Date:           dateString(p.Date),
			TransactionID:  p.TransactionID.String(),
			RunningBalance: money(p.RunningBalance),
		}
	}

	return SummaryResponse{
		Data: SummaryData{
			StartDate:         dateString(output.StartDate),
			EndDate:           dateString(output.EndDate),
			Totals:            ToTotalsResponse(output.Totals),
			ExpenseCategories: toCategoryTotals(output.ExpenseCategories),
			IncomeCategories:  toCategoryTotals(output.IncomeCategories),
			Balance:           balance,
			TransactionCount:  output.TransactionCount,
		},
	}
}

// ToMonthlyTrendsResponse converts a GetMonthlyTrendsOutput to MonthlyTrendsResponse DTO.
func ToMonthlyTrendsResponse(output *dashboard.GetMonthlyTrendsOutput) MonthlyTrendsResponse {
	trends := make([]TrendPointResponse, len(output.Trends))
	for i, t := range output.Trends {
		trends[i] = TrendPointResponse{
			Month:       t.Key,
			PeriodLabel: t.PeriodLabel,
			Income:      money(t.Income),
			Expenses:    money(t.Expenses),
			Balance:     money(t.Balance),
		}
	}

	return MonthlyTrendsResponse{
		Data: MonthlyTrendsData{
			StartDate: dateString(output.StartDate),
			EndDate:   dateString(output.EndDate),
			Trends:    trends,
		},
	}
}

// ToDataRangeResponse converts a GetDataRangeOutput to DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		Data: DataRangeData{
			OldestDate: optionalDate(output.OldestDate),
			NewestDate: optionalDate(output.NewestDate),
			HasData:    output.HasData,
		},
	}
}
