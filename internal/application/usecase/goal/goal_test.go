package goal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-tracker/planner/internal/application/adapter/mocks"
	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

var now = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

func f(v float64) *float64 {
	return &v
}

func newClock(ctrl *gomock.Controller) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return clock
}

func TestCreateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	due := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		input        goal.CreateGoalInput
		expectCreate bool
		expectedCode domainerror.GoalErrorCode
		check        func(t *testing.T, out *goal.GoalOutput)
	}{
		{
			name: "plain goal",
			input: goal.CreateGoalInput{
				UserID:        userID,
				Name:          "Reserva de emergencia",
				DueDate:       due,
				TargetAmount:  5000,
				CurrentAmount: 5000,
			},
			expectCreate: true,
			check: func(t *testing.T, out *goal.GoalOutput) {
				assert.True(t, out.Projection.IsCompleted)
				assert.InDelta(t, 100, out.Projection.ProgressPercent, 1e-9)
			},
		},
		{
			name: "financial-freedom goal",
			input: goal.CreateGoalInput{
				UserID:              userID,
				Name:                "Independencia",
				DueDate:             due,
				IsFinancialFreedom:  true,
				TargetAmount:        999,
				TargetMonthlyIncome: f(1000),
				CurrentInvestments:  f(10000),
				AnnualReturnRate:    f(8),
				MonthlyContribution: f(500),
			},
			expectCreate: true,
			check: func(t *testing.T, out *goal.GoalOutput) {
				assert.Equal(t, 0.0, out.Goal.TargetAmount)
				require.NotNil(t, out.Projection.MonthsRemaining)
				assert.Equal(t, 12, *out.Projection.MonthsRemaining)
				assert.InEpsilon(t, 150000.0, out.Projection.TargetValue, 1e-9)
			},
		},
		{
			name: "financial-freedom goal with zero rate is stored as undefined",
			input: goal.CreateGoalInput{
				UserID:              userID,
				Name:                "Independencia",
				DueDate:             due,
				IsFinancialFreedom:  true,
				TargetMonthlyIncome: f(1000),
				CurrentInvestments:  f(0),
				AnnualReturnRate:    f(0),
				MonthlyContribution: f(500),
			},
			expectCreate: true,
			check: func(t *testing.T, out *goal.GoalOutput) {
				assert.Equal(t, finance.ProjectionUndefined, out.Projection.Status)
			},
		},
		{
			name: "missing name",
			input: goal.CreateGoalInput{
				UserID:       userID,
				DueDate:      due,
				TargetAmount: 100,
			},
			expectedCode: domainerror.ErrCodeMissingGoalFields,
		},
		{
			name: "zero target",
			input: goal.CreateGoalInput{
				UserID:  userID,
				Name:    "Carro",
				DueDate: due,
			},
			expectedCode: domainerror.ErrCodeInvalidGoal,
		},
		{
			name: "incomplete financial-freedom plan",
			input: goal.CreateGoalInput{
				UserID:              userID,
				Name:                "Independencia",
				DueDate:             due,
				IsFinancialFreedom:  true,
				TargetMonthlyIncome: f(1000),
				AnnualReturnRate:    f(8),
			},
			expectedCode: domainerror.ErrCodeIncompleteFreedomGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockGoalRepository(ctrl)
			if tt.expectCreate {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			uc := goal.NewCreateGoalUseCase(repo, newClock(ctrl))
			out, err := uc.Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				var goalErr *domainerror.GoalError
				require.True(t, errors.As(err, &goalErr), "expected GoalError, got %v", err)
				assert.Equal(t, tt.expectedCode, goalErr.Code)
				return
			}

			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestListGoalsUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGoalRepository(ctrl)
	userID := uuid.New()

	plain := entity.NewGoal(userID, "Viagem", now.AddDate(0, -1, 0), 2000, 500)
	freedom := entity.NewFinancialFreedomGoal(userID, "Independencia", now.AddDate(10, 0, 0), entity.FinancialFreedomPlan{
		TargetMonthlyIncome: 5000,
		CurrentInvestments:  100000,
		AnnualReturnRate:    6,
		MonthlyContribution: 2000,
	})
	incomplete := entity.NewFinancialFreedomGoal(userID, "Rascunho", now.AddDate(5, 0, 0), entity.FinancialFreedomPlan{})
	incomplete.AnnualReturnRate = nil

	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return([]*entity.Goal{plain, freedom, incomplete}, nil)

	uc := goal.NewListGoalsUseCase(repo, newClock(ctrl))
	out, err := uc.Execute(context.Background(), goal.ListGoalsInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, out.Goals, 3)

	assert.True(t, out.Goals[0].Projection.IsOverdue)
	assert.InDelta(t, 25, out.Goals[0].Projection.ProgressPercent, 1e-9)

	assert.Equal(t, finance.ProjectionComputed, out.Goals[1].Projection.Status)
	require.NotNil(t, out.Goals[1].Projection.MonthsRemaining)
	assert.Equal(t, 120, *out.Goals[1].Projection.MonthsRemaining)

	assert.Equal(t, finance.ProjectionIncomplete, out.Goals[2].Projection.Status)
}

func TestGetGoalUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	stored := entity.NewGoal(owner, "Carro", now.AddDate(1, 0, 0), 30000, 3000)

	t.Run("owner gets projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGoalRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		uc := goal.NewGetGoalUseCase(repo, newClock(ctrl))
		out, err := uc.Execute(context.Background(), goal.GetGoalInput{GoalID: stored.ID, UserID: owner})

		require.NoError(t, err)
		assert.InDelta(t, 10, out.Projection.ProgressPercent, 1e-9)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGoalRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		uc := goal.NewGetGoalUseCase(repo, newClock(ctrl))
		_, err := uc.Execute(context.Background(), goal.GetGoalInput{GoalID: stored.ID, UserID: uuid.New()})

		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})

	t.Run("missing goal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGoalRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(nil, domainerror.ErrGoalNotFound)

		uc := goal.NewGetGoalUseCase(repo, newClock(ctrl))
		_, err := uc.Execute(context.Background(), goal.GetGoalInput{GoalID: stored.ID, UserID: owner})

		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	stored := entity.NewGoal(owner, "Carro", now.AddDate(1, 0, 0), 30000, 0)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGoalRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)
	repo.EXPECT().Delete(gomock.Any(), stored.ID).Return(nil)

	uc := goal.NewDeleteGoalUseCase(repo)
	err := uc.Execute(context.Background(), goal.DeleteGoalInput{GoalID: stored.ID, UserID: owner})

	assert.NoError(t, err)
}
