package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/adapter/mocks"
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

var defaults = []budget.DefaultEnvelope{
	{Name: entity.BudgetNameMisc, Limit: decimal.Zero, Categories: []string{"misc", "lazer"}},
	{Name: entity.BudgetNameFood, Limit: decimal.Zero, Categories: []string{"food", "mercado"}},
}

func TestListBudgetsUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	budgetRepo := mocks.NewMockBudgetRepository(ctrl)
	txRepo := mocks.NewMockTransactionRepository(ctrl)
	clock := mocks.NewMockClock(ctrl)

	userID := uuid.New()
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	food := entity.NewBudget(userID, entity.BudgetNameFood, decimal.NewFromInt(200), []string{"food", "mercado"}, true)
	travel := entity.NewBudget(userID, "viagem", decimal.NewFromInt(1000), []string{"hotel"}, false)

	clock.EXPECT().Now().Return(day)
	budgetRepo.EXPECT().FindByUserID(gomock.Any(), userID).Return([]*entity.Budget{travel, food}, nil)
	txRepo.EXPECT().
		FindByFilter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
			assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), *filter.EndDate)
			return []*entity.Transaction{
				entity.NewTransaction(userID, day, "Mercado", decimal.NewFromInt(180), entity.TransactionTypeExpense, "mercado", false),
				entity.NewTransaction(userID, day, "Restaurante", decimal.NewFromInt(70), entity.TransactionTypeExpense, "food", false),
				entity.NewTransaction(userID, day, "Cinema", decimal.NewFromInt(40), entity.TransactionTypeExpense, "lazer", false),
			}, nil
		})

	uc := budget.NewListBudgetsUseCase(budgetRepo, txRepo, clock, defaults)
	out, err := uc.Execute(context.Background(), budget.ListBudgetsInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, out.Budgets, 3)

	// Defaults come first, in configuration order.
	misc := out.Budgets[0]
	assert.Equal(t, entity.BudgetNameMisc, misc.Budget.Name)
	assert.True(t, misc.Budget.IsDefault)
	assert.True(t, misc.Actual.Equal(decimal.NewFromInt(40)))
	assert.True(t, misc.UsagePercent.IsZero())
	assert.False(t, misc.IsExceeded)

	foodOut := out.Budgets[1]
	assert.Equal(t, food.ID, foodOut.Budget.ID)
	assert.True(t, foodOut.Actual.Equal(decimal.NewFromInt(250)))
	assert.True(t, foodOut.Remaining.Equal(decimal.NewFromInt(-50)))
	assert.True(t, foodOut.UsagePercent.Equal(decimal.NewFromInt(125)))
	assert.True(t, foodOut.IsExceeded)

	assert.Equal(t, "viagem", out.Budgets[2].Budget.Name)
	assert.True(t, out.Budgets[2].Actual.IsZero())
}

func TestListBudgetsUseCase_InvalidPeriod(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{name: "month after december", year: 2024, month: 13},
		{name: "month missing", year: 2024, month: 0},
		{name: "year missing", year: 0, month: time.March},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := budget.NewListBudgetsUseCase(
				mocks.NewMockBudgetRepository(ctrl),
				mocks.NewMockTransactionRepository(ctrl),
				mocks.NewMockClock(ctrl),
				defaults,
			)

			_, err := uc.Execute(context.Background(), budget.ListBudgetsInput{UserID: uuid.New(), Year: tt.year, Month: tt.month})

			if !errors.Is(err, domainerror.ErrInvalidBudgetPeriod) {
				t.Errorf("expected ErrInvalidBudgetPeriod, got %v", err)
			}
			var budgetErr *domainerror.BudgetError
			require.ErrorAs(t, err, &budgetErr)
			assert.Equal(t, domainerror.ErrCodeInvalidBudgetPeriod, budgetErr.Code)
		})
	}
}

func TestUpsertBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		input        budget.UpsertBudgetInput
		existing     *entity.Budget
		expectSave   bool
		expectedCode domainerror.BudgetErrorCode
		check        func(t *testing.T, b *entity.Budget)
	}{
		{
			name:       "new default envelope takes configured categories",
			input:      budget.UpsertBudgetInput{UserID: userID, Name: "food", Limit: decimal.NewFromInt(600)},
			expectSave: true,
			check: func(t *testing.T, b *entity.Budget) {
				assert.True(t, b.IsDefault)
				assert.Equal(t, []string{"food", "mercado"}, b.Categories)
				assert.True(t, b.Limit.Equal(decimal.NewFromInt(600)))
			},
		},
		{
			name: "new custom budget",
			input: budget.UpsertBudgetInput{
				UserID:     userID,
				Name:       " viagem ",
				Limit:      decimal.NewFromInt(1000),
				Categories: []string{"hotel", " passagem ", "hotel", ""},
			},
			expectSave: true,
			check: func(t *testing.T, b *entity.Budget) {
				assert.Equal(t, "viagem", b.Name)
				assert.False(t, b.IsDefault)
				assert.Equal(t, []string{"hotel", "passagem"}, b.Categories)
			},
		},
		{
			name:       "existing budget keeps categories when none given",
			input:      budget.UpsertBudgetInput{UserID: userID, Name: "viagem", Limit: decimal.NewFromInt(50)},
			existing:   entity.NewBudget(userID, "viagem", decimal.NewFromInt(10), []string{"hotel"}, false),
			expectSave: true,
			check: func(t *testing.T, b *entity.Budget) {
				assert.Equal(t, []string{"hotel"}, b.Categories)
				assert.True(t, b.Limit.Equal(decimal.NewFromInt(50)))
			},
		},
		{
			name:         "negative limit",
			input:        budget.UpsertBudgetInput{UserID: userID, Name: "viagem", Limit: decimal.NewFromInt(-1)},
			expectedCode: domainerror.ErrCodeInvalidBudgetLimit,
		},
		{
			name:         "blank name",
			input:        budget.UpsertBudgetInput{UserID: userID, Name: "  ", Limit: decimal.NewFromInt(1)},
			expectedCode: domainerror.ErrCodeInvalidBudgetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockBudgetRepository(ctrl)
			if tt.expectSave {
				repo.EXPECT().FindByUserAndName(gomock.Any(), userID, gomock.Any()).Return(tt.existing, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			uc := budget.NewUpsertBudgetUseCase(repo, defaults)
			got, err := uc.Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				var budgetErr *domainerror.BudgetError
				require.True(t, errors.As(err, &budgetErr), "expected BudgetError, got %v", err)
				assert.Equal(t, tt.expectedCode, budgetErr.Code)
				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestDeleteBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	custom := entity.NewBudget(userID, "viagem", decimal.NewFromInt(10), nil, false)
	food := entity.NewBudget(userID, "food", decimal.NewFromInt(10), nil, true)

	tests := []struct {
		name      string
		budget    *entity.Budget
		userID    uuid.UUID
		expectDel bool
		wantErr   error
	}{
		{name: "custom budget", budget: custom, userID: userID, expectDel: true},
		{name: "default envelope", budget: food, userID: userID, wantErr: domainerror.ErrDefaultBudgetDeletion},
		{name: "other user", budget: custom, userID: uuid.New(), wantErr: domainerror.ErrUnauthorizedBudgetAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockBudgetRepository(ctrl)
			repo.EXPECT().FindByID(gomock.Any(), tt.budget.ID).Return(tt.budget, nil)
			if tt.expectDel {
				repo.EXPECT().Delete(gomock.Any(), tt.budget.ID).Return(nil)
			}

			uc := budget.NewDeleteBudgetUseCase(repo)
			err := uc.Execute(context.Background(), budget.DeleteBudgetInput{BudgetID: tt.budget.ID, UserID: tt.userID})

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
