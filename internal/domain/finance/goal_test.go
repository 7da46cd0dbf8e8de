package finance

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr(v float64) *float64 {
	return &v
}

func freedomGoal(due time.Time, income, invested, rate, contribution float64) entity.Goal {
	return *entity.NewFinancialFreedomGoal(uuid.New(), "Independencia", due, entity.FinancialFreedomPlan{
		TargetMonthlyIncome: income,
		CurrentInvestments:  invested,
		AnnualReturnRate:    rate,
		MonthlyContribution: contribution,
	})
}

func TestEvaluateGoal_PlainGoal(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name              string
		target            float64
		current           float64
		due               time.Time
		expectedProgress  float64
		expectedClamped   float64
		expectedCompleted bool
		expectedOverdue   bool
	}{
		{
			name:              "completed exactly at target",
			target:            5000,
			current:           5000,
			due:               date(2024, time.December, 31),
			expectedProgress:  100,
			expectedClamped:   100,
			expectedCompleted: true,
		},
		{
			name:              "over target keeps raw progress",
			target:            1000,
			current:           1500,
			due:               date(2024, time.December, 31),
			expectedProgress:  150,
			expectedClamped:   100,
			expectedCompleted: true,
		},
		{
			name:             "halfway and on time",
			target:           2000,
			current:          1000,
			due:              date(2024, time.December, 31),
			expectedProgress: 50,
			expectedClamped:  50,
		},
		{
			name:             "past due and not completed",
			target:           2000,
			current:          500,
			due:              date(2024, time.June, 14),
			expectedProgress: 25,
			expectedClamped:  25,
			expectedOverdue:  true,
		},
		{
			name:             "due today is not overdue",
			target:           2000,
			current:          500,
			due:              date(2024, time.June, 15),
			expectedProgress: 25,
			expectedClamped:  25,
		},
		{
			name:              "past due but completed is not overdue",
			target:            100,
			current:           100,
			due:               date(2023, time.January, 1),
			expectedProgress:  100,
			expectedClamped:   100,
			expectedCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := *entity.NewGoal(uuid.New(), "Viagem", tt.due, tt.target, tt.current)

			projection, err := EvaluateGoal(goal, now)
			require.NoError(t, err)

			assert.Equal(t, ProjectionComputed, projection.Status)
			assert.InDelta(t, tt.expectedProgress, projection.ProgressPercent, 1e-9)
			assert.InDelta(t, tt.expectedClamped, projection.ProgressPercentClamped, 1e-9)
			assert.Equal(t, tt.expectedCompleted, projection.IsCompleted)
			assert.Equal(t, tt.expectedOverdue, projection.IsOverdue)
			assert.Equal(t, tt.target, projection.TargetValue)
			assert.Equal(t, tt.current, projection.CurrentValue)
			assert.Nil(t, projection.MonthsRemaining)
		})
	}
}

func TestEvaluateGoal_FinancialFreedom(t *testing.T) {
	now := date(2024, time.January, 10)

	t.Run("projects investments until the due date", func(t *testing.T) {
		goal := freedomGoal(date(2025, time.January, 10), 1000, 10000, 8, 500)

		projection, err := EvaluateGoal(goal, now)
		require.NoError(t, err)

		require.NotNil(t, projection.MonthsRemaining)
		assert.Equal(t, 12, *projection.MonthsRemaining)
		assert.Equal(t, ProjectionComputed, projection.Status)
		assert.InEpsilon(t, 150000.0, projection.TargetValue, 1e-9)
		assert.InEpsilon(t, 17096.457832042084, projection.CurrentValue, 1e-6)
		assert.InEpsilon(t, 17096.457832042084/150000*100, projection.ProgressPercent, 1e-6)
		assert.False(t, projection.IsCompleted)
		assert.False(t, projection.IsOverdue)
	})

	t.Run("completed when projection reaches target capital", func(t *testing.T) {
		goal := freedomGoal(date(2030, time.January, 10), 100, 20000, 6, 0)

		projection, err := EvaluateGoal(goal, now)
		require.NoError(t, err)

		assert.InEpsilon(t, 20000.0, projection.TargetValue, 1e-9)
		assert.True(t, projection.IsCompleted)
		assert.False(t, projection.IsOverdue)
		assert.Equal(t, 100.0, projection.ProgressPercentClamped)
	})

	t.Run("due date passed uses current investments and is overdue", func(t *testing.T) {
		goal := freedomGoal(date(2023, time.December, 1), 1000, 5000, 10, 500)

		projection, err := EvaluateGoal(goal, now)
		require.NoError(t, err)

		require.NotNil(t, projection.MonthsRemaining)
		assert.Equal(t, -1, *projection.MonthsRemaining)
		assert.Equal(t, 5000.0, projection.CurrentValue)
		assert.True(t, projection.IsOverdue)
	})

	t.Run("zero rate reports undefined without infinities", func(t *testing.T) {
		goal := freedomGoal(date(2025, time.January, 10), 1000, 10000, 0, 500)

		projection, err := EvaluateGoal(goal, now)
		require.NoError(t, err)

		assert.Equal(t, ProjectionUndefined, projection.Status)
		assert.Equal(t, 0.0, projection.TargetValue)
		assert.Equal(t, 0.0, projection.ProgressPercent)
		assert.False(t, math.IsInf(projection.ProgressPercent, 0))
		assert.False(t, math.IsNaN(projection.ProgressPercent))
		assert.InDelta(t, 16000.0, projection.CurrentValue, 1e-9)
		assert.False(t, projection.IsCompleted)
		assert.False(t, projection.IsOverdue)
	})

	t.Run("zero rate past the due date is still overdue", func(t *testing.T) {
		goal := freedomGoal(date(2023, time.December, 1), 1000, 5000, 0, 500)

		projection, err := EvaluateGoal(goal, now)
		require.NoError(t, err)

		assert.Equal(t, ProjectionUndefined, projection.Status)
		assert.Equal(t, 5000.0, projection.CurrentValue)
		assert.False(t, projection.IsCompleted)
		assert.True(t, projection.IsOverdue)
	})

	t.Run("missing field reports incomplete", func(t *testing.T) {
		goal := freedomGoal(date(2025, time.January, 10), 1000, 10000, 8, 500)
		goal.MonthlyContribution = nil

		projection, err := EvaluateGoal(goal, now)
		require.NoError(t, err)

		assert.Equal(t, ProjectionIncomplete, projection.Status)
		assert.Equal(t, 0.0, projection.ProgressPercent)
		assert.Nil(t, projection.MonthsRemaining)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		goal := freedomGoal(date(2025, time.January, 10), 1000, 10000, -2, 500)

		_, err := EvaluateGoal(goal, now)
		if !errors.Is(err, domainerror.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestTargetCapital(t *testing.T) {
	capital, defined := TargetCapital(5000, 6)
	assert.True(t, defined)
	assert.InDelta(t, 1000000.0, capital, 1e-6)

	_, defined = TargetCapital(5000, 0)
	assert.False(t, defined)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{"same day", date(2024, time.March, 5), date(2024, time.March, 5), 0},
		{"exactly one year", date(2024, time.January, 10), date(2025, time.January, 10), 12},
		{"day not reached yet", date(2024, time.January, 10), date(2024, time.March, 9), 1},
		{"across year boundary", date(2024, time.November, 30), date(2025, time.February, 28), 2},
		{"past by one month", date(2024, time.January, 10), date(2023, time.December, 10), -1},
		{"past by less than a month", date(2024, time.January, 10), date(2023, time.December, 20), 0},
		{"time of day is ignored", time.Date(2024, time.May, 1, 23, 0, 0, 0, time.UTC), date(2024, time.June, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthsBetween(tt.from, tt.to)
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	due := date(2030, time.January, 1)

	tests := []struct {
		name         string
		goal         func() entity.Goal
		expectedErr  error
		expectedCode domainerror.FinanceErrorCode
	}{
		{
			name: "valid plain goal",
			goal: func() entity.Goal { return *entity.NewGoal(uuid.New(), "Carro", due, 30000, 0) },
		},
		{
			name:         "plain goal with zero target",
			goal:         func() entity.Goal { return *entity.NewGoal(uuid.New(), "Carro", due, 0, 0) },
			expectedErr:  domainerror.ErrInvalidArgument,
			expectedCode: domainerror.ErrCodeNonPositiveTarget,
		},
		{
			name:         "plain goal with negative current amount",
			goal:         func() entity.Goal { return *entity.NewGoal(uuid.New(), "Carro", due, 100, -1) },
			expectedErr:  domainerror.ErrInvalidArgument,
			expectedCode: domainerror.ErrCodeNegativeGoalValue,
		},
		{
			name: "missing due date",
			goal: func() entity.Goal {
				g := *entity.NewGoal(uuid.New(), "Carro", due, 100, 0)
				g.DueDate = time.Time{}
				return g
			},
			expectedErr:  domainerror.ErrInvalidArgument,
			expectedCode: domainerror.ErrCodeMissingDueDate,
		},
		{
			name: "valid financial-freedom goal",
			goal: func() entity.Goal { return freedomGoal(due, 5000, 0, 8, 1000) },
		},
		{
			name: "financial-freedom goal missing rate",
			goal: func() entity.Goal {
				g := freedomGoal(due, 5000, 0, 8, 1000)
				g.AnnualReturnRate = nil
				return g
			},
			expectedErr:  domainerror.ErrMissingData,
			expectedCode: domainerror.ErrCodeMissingFreedomField,
		},
		{
			name: "financial-freedom goal with negative contribution",
			goal: func() entity.Goal {
				g := freedomGoal(due, 5000, 0, 8, 1000)
				g.MonthlyContribution = ptr(-10)
				return g
			},
			expectedErr:  domainerror.ErrInvalidArgument,
			expectedCode: domainerror.ErrCodeNegativeGoalValue,
		},
		{
			name:         "financial-freedom goal with rate above 100",
			goal:         func() entity.Goal { return freedomGoal(due, 5000, 0, 101, 1000) },
			expectedErr:  domainerror.ErrInvalidArgument,
			expectedCode: domainerror.ErrCodeRateOutOfRange,
		},
		{
			name: "financial-freedom goal ignores plain target",
			goal: func() entity.Goal { return freedomGoal(due, 5000, 0, 0, 1000) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoal(tt.goal())

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			var finErr *domainerror.FinanceError
			if !errors.As(err, &finErr) {
				t.Fatalf("expected FinanceError, got %T", err)
			}
			if finErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, finErr.Code)
			}
		})
	}
}
