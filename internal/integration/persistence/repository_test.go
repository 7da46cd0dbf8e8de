package persistence_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/persistence"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One connection: every new connection to :memory: is a fresh database.
	conn, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.TransactionModel{},
		&model.GoalModel{},
		&model.BudgetModel{},
		&model.DebtModel{},
		&model.SubscriptionModel{},
	))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewTransactionRepository(newTestDB(t))
	userID, otherID := uuid.New(), uuid.New()

	txs := []*entity.Transaction{
		entity.NewTransaction(userID, day(2024, time.February, 10), "Aluguel", decimal.NewFromInt(900), entity.TransactionTypeExpense, "moradia", true),
		entity.NewTransaction(userID, day(2024, time.January, 5), "Salario", decimal.NewFromInt(3000), entity.TransactionTypeIncome, "salario", true),
		entity.NewTransaction(userID, day(2024, time.March, 1), "Mercado", decimal.NewFromInt(150), entity.TransactionTypeExpense, "mercado", false),
		entity.NewTransaction(otherID, day(2024, time.February, 1), "Outro", decimal.NewFromInt(10), entity.TransactionTypeExpense, "mercado", false),
	}
	for _, tx := range txs {
		require.NoError(t, repo.Create(ctx, tx))
	}

	t.Run("filter by period is inclusive and ordered by date", func(t *testing.T) {
		start, end := day(2024, time.January, 5), day(2024, time.February, 10)
		found, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, StartDate: &start, EndDate: &end})

		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Salario", found[0].Description)
		assert.True(t, found[1].Amount.Equal(decimal.NewFromInt(-900)), "got %s", found[1].Amount)
	})

	t.Run("filter by type and category", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		found, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, Type: &expense, Category: "mercado"})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Mercado", found[0].Description)
	})

	t.Run("date range", func(t *testing.T) {
		oldest, newest, err := repo.GetDateRange(ctx, userID)

		require.NoError(t, err)
		require.NotNil(t, oldest)
		assert.Equal(t, day(2024, time.January, 5), *oldest)
		assert.Equal(t, day(2024, time.March, 1), *newest)

		oldest, newest, err = repo.GetDateRange(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, oldest)
		assert.Nil(t, newest)
	})

	t.Run("delete hides the transaction", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, txs[2].ID))

		_, err := repo.FindByID(ctx, txs[2].ID)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepository_CanonicalisesSignOnRead(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := persistence.NewTransactionRepository(db)

	// A row written with a positive expense amount by another client.
	row := &model.TransactionModel{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Date:      day(2024, time.May, 2),
		Amount:    decimal.NewFromInt(40),
		Type:      string(entity.TransactionTypeExpense),
		Category:  "lazer",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(row).Error)

	found, err := repo.FindByID(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(-40)))
}

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGoalRepository(newTestDB(t))
	userID := uuid.New()

	plain := entity.NewGoal(userID, "Carro", day(2026, time.January, 1), 40000, 1000)
	freedom := entity.NewFinancialFreedomGoal(userID, "Independencia", day(2040, time.January, 1), entity.FinancialFreedomPlan{
		TargetMonthlyIncome: 8000,
		CurrentInvestments:  50000,
		AnnualReturnRate:    7.5,
		MonthlyContribution: 1500,
	})
	require.NoError(t, repo.Create(ctx, freedom))
	require.NoError(t, repo.Create(ctx, plain))

	goals, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "Carro", goals[0].Name)

	plan, ok := goals[1].FreedomPlan()
	require.True(t, ok)
	assert.InDelta(t, 7.5, plan.AnnualReturnRate, 1e-9)

	require.NoError(t, repo.Delete(ctx, plain.ID))
	_, err = repo.FindByID(ctx, plain.ID)
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewBudgetRepository(newTestDB(t))
	userID := uuid.New()

	missing, err := repo.FindByUserAndName(ctx, userID, entity.BudgetNameFood)
	require.NoError(t, err)
	assert.Nil(t, missing)

	food := entity.NewBudget(userID, entity.BudgetNameFood, decimal.NewFromInt(600), []string{"food", "mercado"}, true)
	require.NoError(t, repo.Save(ctx, food))
	travel := entity.NewBudget(userID, "viagem", decimal.NewFromInt(1000), nil, false)
	require.NoError(t, repo.Save(ctx, travel))

	food.Limit = decimal.NewFromInt(650)
	require.NoError(t, repo.Save(ctx, food))

	budgets, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, entity.BudgetNameFood, budgets[0].Name)
	assert.Equal(t, []string{"food", "mercado"}, budgets[0].Categories)
	assert.True(t, budgets[0].Limit.Equal(decimal.NewFromInt(650)))
	assert.Empty(t, budgets[1].Categories)

	require.NoError(t, repo.Delete(ctx, travel.ID))
	_, err = repo.FindByID(ctx, travel.ID)
	if !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestDebtAndSubscriptionRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	debts := persistence.NewDebtRepository(db)
	subscriptions := persistence.NewSubscriptionRepository(db)
	userID := uuid.New()

	later := entity.NewDebt(userID, "Notebook", decimal.NewFromInt(3000), decimal.Zero, 10, 1, day(2024, time.June, 10))
	sooner := entity.NewDebt(userID, "Cartao", decimal.NewFromInt(800), decimal.NewFromInt(100), 4, 1, day(2024, time.May, 10))
	require.NoError(t, debts.Create(ctx, later))
	require.NoError(t, debts.Create(ctx, sooner))

	found, err := debts.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Cartao", found[0].Name)
	assert.True(t, found[0].Remaining().Equal(decimal.NewFromInt(700)))

	sub, err := subscriptions.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, sub)

	now := time.Now().UTC()
	require.NoError(t, db.Create(&model.SubscriptionModel{
		ID:             uuid.New(),
		UserID:         userID,
		Plan:           "monthly",
		PremiumUntil:   now.Add(24 * time.Hour),
		GracePeriodEnd: now.Add(8 * 24 * time.Hour),
		CreatedAt:      now,
		UpdatedAt:      now,
	}).Error)

	sub, err = subscriptions.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, entity.SubscriptionStateActive, sub.State(now))
}
