package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// TotalsSummary holds the totals of a set of transactions.
// Expenses is a magnitude; Balance is the signed sum.
type TotalsSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// CategoryTotal is the summed magnitude of one category.
type CategoryTotal struct {
	Category   string
	Amount     decimal.Decimal
	Count      int
	Percentage decimal.Decimal // Filled by CategoryShares
}

// MonthlySummary holds income and expenses of one calendar month.
type MonthlySummary struct {
	Year    int
	Month   time.Month
	Label   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// BalancePoint is the cumulative balance right after a transaction.
type BalancePoint struct {
	Date           time.Time
	TransactionID  uuid.UUID
	RunningBalance decimal.Decimal
}

// CategorySet is a set of category labels.
type CategorySet map[string]struct{}

// NewCategorySet builds a CategorySet from labels.
func NewCategorySet(categories ...string) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

// Contains reports whether category belongs to the set.
func (s CategorySet) Contains(category string) bool {
	_, ok := s[category]
	return ok
}

// Totals sums income, expenses and balance.
func Totals(transactions []entity.Transaction) TotalsSummary {
	totals := TotalsSummary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Balance:  decimal.Zero,
	}

	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount.Abs())
		}
		totals.Balance = totals.Balance.Add(tx.Amount)
	}

	return totals
}

// CategoryBreakdown sums the magnitude of transactions of the given type per
// category, sorted by amount descending. Ties keep first-appearance order.
func CategoryBreakdown(transactions []entity.Transaction, txType entity.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	result := make([]CategoryTotal, 0)

	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(result)
			index[tx.Category] = i
			result = append(result, CategoryTotal{Category: tx.Category, Amount: decimal.Zero, Percentage: decimal.Zero})
		}
		result[i].Amount = result[i].Amount.Add(tx.Amount.Abs())
		result[i].Count++
	}

	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Amount.GreaterThan(result[b].Amount)
	})

	return result
}

// CategoryShares is CategoryBreakdown with each category's share of the total,
// in percent rounded to two places.
func CategoryShares(transactions []entity.Transaction, txType entity.TransactionType) []CategoryTotal {
	breakdown := CategoryBreakdown(transactions, txType)

	total := decimal.Zero
	for _, c := range breakdown {
		total = total.Add(c.Amount)
	}
	if total.IsZero() {
		return breakdown
	}

	for i := range breakdown {
		breakdown[i].Percentage = breakdown[i].Amount.Div(total).Mul(hundred).Round(2)
	}
	return breakdown
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyBreakdown groups transactions by calendar month, ascending by (year, month).
func MonthlyBreakdown(transactions []entity.Transaction) []MonthlySummary {
	index := make(map[monthKey]int)
	result := make([]MonthlySummary, 0)

	for _, tx := range transactions {
		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, NewMonthlySummary(key.year, key.month))
		}
		switch tx.Type {
		case entity.TransactionTypeIncome:
			result[i].Income = result[i].Income.Add(tx.Amount.Abs())
		case entity.TransactionTypeExpense:
			result[i].Expense = result[i].Expense.Add(tx.Amount.Abs())
		}
	}

	sort.Slice(result, func(a, b int) bool {
		if result[a].Year != result[b].Year {
			return result[a].Year < result[b].Year
		}
		return result[a].Month < result[b].Month
	})

	return result
}

// NewMonthlySummary returns an empty summary for the given month.
func NewMonthlySummary(year int, month time.Month) MonthlySummary {
	return MonthlySummary{
		Year:    year,
		Month:   month,
		Label:   fmt.Sprintf("%04d-%02d", year, int(month)),
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
}

// RunningBalance returns the cumulative signed balance after each
// transaction, ordered by date. Same-day transactions keep input order.
func RunningBalance(transactions []entity.Transaction) []BalancePoint {
	sorted := make([]entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Date.Before(sorted[b].Date)
	})

	points := make([]BalancePoint, 0, len(sorted))
	balance := decimal.Zero
	for _, tx := range sorted {
		balance = balance.Add(tx.Amount)
		points = append(points, BalancePoint{
			Date:           tx.Date,
			TransactionID:  tx.ID,
			RunningBalance: balance,
		})
	}

	return points
}

// BudgetActual sums the magnitude of expenses whose category is in categories.
func BudgetActual(transactions []entity.Transaction, categories CategorySet) decimal.Decimal {
	return budgetActual(transactions, categories.Contains)
}

func budgetActual(transactions []entity.Transaction, matches func(string) bool) decimal.Decimal {
	actual := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeExpense && matches(tx.Category) {
			actual = actual.Add(tx.Amount.Abs())
		}
	}
	return actual
}

// FilterPeriod returns the transactions dated between start and end,
// both calendar days inclusive.
func FilterPeriod(transactions []entity.Transaction, start, end time.Time) []entity.Transaction {
	start, end = entity.DateOnly(start), entity.DateOnly(end)

	result := make([]entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		day := entity.DateOnly(tx.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// MonthBounds returns the first and last calendar day of the given month.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
