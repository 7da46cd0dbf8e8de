package finance

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

var userID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func income(day time.Time, amount int64, category string) entity.Transaction {
	return *entity.NewTransaction(userID, day, "receita", decimal.NewFromInt(amount), entity.TransactionTypeIncome, category, false)
}

func expense(day time.Time, amount int64, category string) entity.Transaction {
	return *entity.NewTransaction(userID, day, "despesa", decimal.NewFromInt(amount), entity.TransactionTypeExpense, category, false)
}

func assertDecimal(t *testing.T, expected string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(expected)) {
		t.Errorf("expected %s, got %s", expected, got.String())
	}
}

func TestTotals(t *testing.T) {
	day := date(2024, time.March, 1)

	tests := []struct {
		name             string
		transactions     []entity.Transaction
		expectedIncome   string
		expectedExpenses string
		expectedBalance  string
	}{
		{
			name: "income with two expenses",
			transactions: []entity.Transaction{
				income(day, 1000, "salario"),
				expense(day, -300, "food"),
				expense(day, -200, "misc"),
			},
			expectedIncome:   "1000",
			expectedExpenses: "500",
			expectedBalance:  "500",
		},
		{
			name: "unsigned expense amounts are normalised",
			transactions: []entity.Transaction{
				income(day, 100, "salario"),
				expense(day, 300, "food"),
			},
			expectedIncome:   "100",
			expectedExpenses: "300",
			expectedBalance:  "-200",
		},
		{
			name:             "empty input",
			transactions:     nil,
			expectedIncome:   "0",
			expectedExpenses: "0",
			expectedBalance:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Totals(tt.transactions)
			assertDecimal(t, tt.expectedIncome, totals.Income)
			assertDecimal(t, tt.expectedExpenses, totals.Expenses)
			assertDecimal(t, tt.expectedBalance, totals.Balance)
		})
	}
}

func TestTotals_LedgerIdentity(t *testing.T) {
	day := date(2024, time.March, 1)
	sets := [][]entity.Transaction{
		{},
		{income(day, 10, "a")},
		{expense(day, 10, "a")},
		{income(day, 1500, "a"), expense(day, -700, "b"), expense(day, 900, "c"), income(day, 3, "d")},
	}

	for i, txs := range sets {
		totals := Totals(txs)

		signed := decimal.Zero
		for _, tx := range txs {
			signed = signed.Add(tx.Amount)
		}

		if !totals.Balance.Equal(totals.Income.Sub(totals.Expenses)) {
			t.Errorf("set %d: balance %s != income - expenses %s", i, totals.Balance, totals.Income.Sub(totals.Expenses))
		}
		if !totals.Balance.Equal(signed) {
			t.Errorf("set %d: balance %s != signed sum %s", i, totals.Balance, signed)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	day := date(2024, time.April, 2)
	txs := []entity.Transaction{
		expense(day, 50, "transporte"),
		expense(day, 100, "lazer"),
		income(day, 5000, "salario"),
		expense(day, 100, "food"),
		expense(day, 6, "transporte"),
		expense(day, 4, "transporte"),
	}

	breakdown := CategoryBreakdown(txs, entity.TransactionTypeExpense)

	require.Len(t, breakdown, 3)
	// lazer and food tie at 100; lazer appeared first.
	assert.Equal(t, "lazer", breakdown[0].Category)
	assert.Equal(t, "food", breakdown[1].Category)
	assert.Equal(t, "transporte", breakdown[2].Category)
	assertDecimal(t, "60", breakdown[2].Amount)
	assert.Equal(t, 3, breakdown[2].Count)

	incomes := CategoryBreakdown(txs, entity.TransactionTypeIncome)
	require.Len(t, incomes, 1)
	assertDecimal(t, "5000", incomes[0].Amount)

	assert.Empty(t, CategoryBreakdown(nil, entity.TransactionTypeExpense))
}

func TestCategoryShares(t *testing.T) {
	day := date(2024, time.April, 2)
	txs := []entity.Transaction{
		expense(day, 200, "food"),
		expense(day, 100, "misc"),
	}

	shares := CategoryShares(txs, entity.TransactionTypeExpense)

	require.Len(t, shares, 2)
	assertDecimal(t, "66.67", shares[0].Percentage)
	assertDecimal(t, "33.33", shares[1].Percentage)
}

func TestMonthlyBreakdown_OrdersChronologically(t *testing.T) {
	txs := []entity.Transaction{
		income(date(2025, time.January, 5), 1000, "salario"),
		expense(date(2025, time.January, 20), 300, "food"),
		income(date(2024, time.December, 5), 900, "salario"),
		expense(date(2024, time.December, 24), 600, "presentes"),
		expense(date(2024, time.February, 1), 10, "misc"),
	}

	months := MonthlyBreakdown(txs)

	require.Len(t, months, 3)
	assert.Equal(t, "2024-02", months[0].Label)
	assert.Equal(t, "2024-12", months[1].Label)
	assert.Equal(t, "2025-01", months[2].Label)

	assert.Equal(t, 2024, months[1].Year)
	assert.Equal(t, time.December, months[1].Month)
	assertDecimal(t, "900", months[1].Income)
	assertDecimal(t, "600", months[1].Expense)
	assertDecimal(t, "1000", months[2].Income)
	assertDecimal(t, "300", months[2].Expense)
}

func TestRunningBalance(t *testing.T) {
	first := income(date(2024, time.May, 1), 1000, "salario")
	sameDayA := expense(date(2024, time.May, 3), 100, "food")
	sameDayB := expense(date(2024, time.May, 3), 50, "misc")
	last := expense(date(2024, time.May, 10), 25, "misc")

	input := []entity.Transaction{last, sameDayA, first, sameDayB}
	points := RunningBalance(input)

	require.Len(t, points, 4)
	expectedIDs := []uuid.UUID{first.ID, sameDayA.ID, sameDayB.ID, last.ID}
	expectedBalances := []string{"1000", "900", "850", "825"}
	for i, p := range points {
		if p.TransactionID != expectedIDs[i] {
			t.Errorf("point %d: expected transaction %s, got %s", i, expectedIDs[i], p.TransactionID)
		}
		assertDecimal(t, expectedBalances[i], p.RunningBalance)
	}

	// Input order must be untouched.
	assert.Equal(t, last.ID, input[0].ID)
	assert.Empty(t, RunningBalance(nil))
}

func TestBudgetActual(t *testing.T) {
	day := date(2024, time.June, 1)
	txs := []entity.Transaction{
		expense(day, 120, "mercado"),
		expense(day, 80, "restaurante"),
		expense(day, 500, "aluguel"),
		income(day, 90, "mercado"),
	}

	actual := BudgetActual(txs, NewCategorySet("mercado", "restaurante"))
	assertDecimal(t, "200", actual)

	assertDecimal(t, "0", BudgetActual(txs, NewCategorySet()))
}

func TestFilterPeriod(t *testing.T) {
	txs := []entity.Transaction{
		expense(date(2024, time.May, 31), 1, "a"),
		expense(date(2024, time.June, 1), 2, "b"),
		expense(date(2024, time.June, 30), 3, "c"),
		expense(date(2024, time.July, 1), 4, "d"),
	}

	start, end := MonthBounds(2024, time.June)
	filtered := FilterPeriod(txs, start, end)

	require.Len(t, filtered, 2)
	assert.Equal(t, "b", filtered[0].Category)
	assert.Equal(t, "c", filtered[1].Category)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.February, 29), end)

	start, end = MonthBounds(2023, time.December)
	assert.Equal(t, date(2023, time.December, 1), start)
	assert.Equal(t, date(2023, time.December, 31), end)
}

func TestAggregators_Idempotent(t *testing.T) {
	day := date(2024, time.March, 3)
	txs := []entity.Transaction{
		income(day, 1000, "salario"),
		expense(day.AddDate(0, 1, 0), 300, "food"),
		expense(day, 300, "misc"),
	}

	if !reflect.DeepEqual(Totals(txs), Totals(txs)) {
		t.Error("Totals is not idempotent")
	}
	if !reflect.DeepEqual(CategoryShares(txs, entity.TransactionTypeExpense), CategoryShares(txs, entity.TransactionTypeExpense)) {
		t.Error("CategoryShares is not idempotent")
	}
	if !reflect.DeepEqual(MonthlyBreakdown(txs), MonthlyBreakdown(txs)) {
		t.Error("MonthlyBreakdown is not idempotent")
	}
	if !reflect.DeepEqual(RunningBalance(txs), RunningBalance(txs)) {
		t.Error("RunningBalance is not idempotent")
	}
}
