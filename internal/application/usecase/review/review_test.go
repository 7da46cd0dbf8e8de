package review_test

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
	"github.com/finance-tracker/planner/internal/application/usecase/review"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

var (
	now      = time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	defaults = []budget.DefaultEnvelope{
		{Name: entity.BudgetNameMisc, Limit: decimal.Zero, Categories: []string{"misc"}},
		{Name: entity.BudgetNameFood, Limit: decimal.Zero, Categories: []string{"food", "mercado"}},
	}
)

type fixture struct {
	txRepo     *mocks.MockTransactionRepository
	goalRepo   *mocks.MockGoalRepository
	budgetRepo *mocks.MockBudgetRepository
	useCase    *review.GetMonthlyReviewUseCase
}

func newFixture(ctrl *gomock.Controller) *fixture {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	f := &fixture{
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		goalRepo:   mocks.NewMockGoalRepository(ctrl),
		budgetRepo: mocks.NewMockBudgetRepository(ctrl),
	}
	f.useCase = review.NewGetMonthlyReviewUseCase(f.txRepo, f.goalRepo, f.budgetRepo, clock, defaults)
	return f
}

// expectOverspentMonth sets up a month with expenses above income, the food
// budget exceeded by 50 and no goals: 100 - 20 - 15 - 5 = 60.
func (f *fixture) expectOverspentMonth(userID uuid.UUID) {
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	f.txRepo.EXPECT().FindByFilter(gomock.Any(), gomock.Any()).Return([]*entity.Transaction{
		entity.NewTransaction(userID, day, "Salario", decimal.NewFromInt(1000), entity.TransactionTypeIncome, "salario", false),
		entity.NewTransaction(userID, day, "Aluguel", decimal.NewFromInt(950), entity.TransactionTypeExpense, "moradia", false),
		entity.NewTransaction(userID, day, "Mercado", decimal.NewFromInt(250), entity.TransactionTypeExpense, "mercado", false),
	}, nil)
	f.goalRepo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
	f.budgetRepo.EXPECT().FindByUserID(gomock.Any(), userID).Return([]*entity.Budget{
		entity.NewBudget(userID, entity.BudgetNameFood, decimal.NewFromInt(200), []string{"food", "mercado"}, true),
	}, nil)
}

func TestGetMonthlyReviewUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)
	userID := uuid.New()
	f.expectOverspentMonth(userID)

	out, err := f.useCase.Execute(context.Background(), review.GetMonthlyReviewInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, time.March, out.Month)
	assert.Equal(t, 60, out.Score)
	assert.True(t, out.Totals.Expenses.Equal(decimal.NewFromInt(1200)))

	improvements := 0
	for _, in := range out.Insights {
		if in.Kind == finance.InsightImprovement {
			improvements++
		}
	}
	assert.Equal(t, 3, improvements)
}

func TestGetMonthlyReviewUseCase_InvalidPeriod(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"month out of range", 2024, 13},
		{"month without year", 0, time.May},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newFixture(ctrl)

			_, err := f.useCase.Execute(context.Background(), review.GetMonthlyReviewInput{
				UserID: uuid.New(),
				Year:   tt.year,
				Month:  tt.month,
			})

			if !errors.Is(err, domainerror.ErrInvalidReviewPeriod) {
				t.Errorf("expected ErrInvalidReviewPeriod, got %v", err)
			}
		})
	}
}

func TestEmailMonthlyReviewUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("sends the digest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.expectOverspentMonth(userID)

		emailService := mocks.NewMockEmailService(ctrl)
		emailService.EXPECT().
			SendMonthlyReview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in adapter.MonthlyReviewEmailInput) (*adapter.SendEmailResult, error) {
				assert.Equal(t, "ana@example.com", in.To)
				assert.Equal(t, 60, in.Score)
				assert.Len(t, in.Insights, 3)
				return &adapter.SendEmailResult{ResendID: "re_123"}, nil
			})

		uc := review.NewEmailMonthlyReviewUseCase(f.useCase, emailService)
		out, err := uc.Execute(context.Background(), review.EmailMonthlyReviewInput{
			UserID: userID,
			Email:  " ana@example.com ",
			Name:   "Ana",
		})

		require.NoError(t, err)
		assert.Equal(t, "re_123", out.ResendID)
	})

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		uc := review.NewEmailMonthlyReviewUseCase(f.useCase, mocks.NewMockEmailService(ctrl))
		_, err := uc.Execute(context.Background(), review.EmailMonthlyReviewInput{UserID: userID})

		if !errors.Is(err, domainerror.ErrMissingRecipient) {
			t.Errorf("expected ErrMissingRecipient, got %v", err)
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.expectOverspentMonth(userID)

		sendErr := domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "rate limited", domainerror.ErrTemporaryEmailFailure)
		emailService := mocks.NewMockEmailService(ctrl)
		emailService.EXPECT().SendMonthlyReview(gomock.Any(), gomock.Any()).Return(nil, sendErr)

		uc := review.NewEmailMonthlyReviewUseCase(f.useCase, emailService)
		_, err := uc.Execute(context.Background(), review.EmailMonthlyReviewInput{UserID: userID, Email: "ana@example.com"})

		var reviewErr *domainerror.ReviewError
		require.True(t, errors.As(err, &reviewErr))
		assert.Equal(t, domainerror.ErrCodeReviewEmailFailed, reviewErr.Code)
		assert.ErrorIs(t, err, domainerror.ErrTemporaryEmailFailure)
		assert.True(t, domainerror.IsRetryableEmailError(err))
	})
}
