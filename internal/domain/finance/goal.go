package finance

import (
	"math"
	"time"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// ProjectionStatus tags whether a goal projection could be computed.
type ProjectionStatus string

const (
	// ProjectionComputed means every field of the projection is meaningful.
	ProjectionComputed ProjectionStatus = "computed"
	// ProjectionUndefined means the return rate is zero, so no target capital exists.
	ProjectionUndefined ProjectionStatus = "undefined"
	// ProjectionIncomplete means a financial-freedom input is missing.
	ProjectionIncomplete ProjectionStatus = "incomplete"
)

// MaxAnnualReturnRate is the highest annual return rate accepted, in percent.
const MaxAnnualReturnRate = 100.0

// GoalProjection is the read-only evaluation of a goal at a point in time.
type GoalProjection struct {
	Status                 ProjectionStatus
	ProgressPercent        float64 // Raw, may exceed 100
	ProgressPercentClamped float64 // 0..100, for progress bars
	TargetValue            float64 // Target amount or target capital
	CurrentValue           float64 // Current amount or projected value
	IsCompleted            bool
	IsOverdue              bool
	MonthsRemaining        *int // Financial-freedom goals only
}

// EvaluateGoal evaluates goal at now.
// The error is non-nil only for plans outside the valid domain
// (negative rate); missing inputs and a zero rate are reported through Status.
func EvaluateGoal(goal entity.Goal, now time.Time) (GoalProjection, error) {
	if goal.IsFinancialFreedom {
		return evaluateFreedomGoal(goal, now)
	}
	return evaluatePlainGoal(goal, now), nil
}

func evaluatePlainGoal(goal entity.Goal, now time.Time) GoalProjection {
	projection := GoalProjection{
		Status:       ProjectionComputed,
		TargetValue:  goal.TargetAmount,
		CurrentValue: goal.CurrentAmount,
		IsCompleted:  goal.CurrentAmount >= goal.TargetAmount,
	}

	if goal.TargetAmount > 0 {
		projection.ProgressPercent = goal.CurrentAmount / goal.TargetAmount * 100
	} else {
		projection.Status = ProjectionUndefined
	}
	projection.ProgressPercentClamped = clampPercent(projection.ProgressPercent)
	projection.IsOverdue = entity.DateOnly(now).After(entity.DateOnly(goal.DueDate)) && !projection.IsCompleted

	return projection
}

func evaluateFreedomGoal(goal entity.Goal, now time.Time) (GoalProjection, error) {
	plan, ok := goal.FreedomPlan()
	if !ok {
		return GoalProjection{Status: ProjectionIncomplete}, nil
	}

	months := MonthsBetween(now, goal.DueDate)
	projection := GoalProjection{
		Status:          ProjectionComputed,
		CurrentValue:    plan.CurrentInvestments,
		MonthsRemaining: &months,
	}

	if months > 0 {
		projected, err := FutureValue(plan.CurrentInvestments, plan.MonthlyContribution, plan.AnnualReturnRate, months)
		if err != nil {
			return GoalProjection{}, err
		}
		projection.CurrentValue = projected
	} else if plan.AnnualReturnRate < 0 {
		return GoalProjection{}, domainerror.NewInvalidArgumentError(domainerror.ErrCodeNegativeRate, "annual rate must not be negative")
	}

	target, defined := TargetCapital(plan.TargetMonthlyIncome, plan.AnnualReturnRate)
	if !defined {
		projection.Status = ProjectionUndefined
		projection.IsOverdue = months <= 0
		return projection, nil
	}

	projection.TargetValue = target
	if target > 0 {
		projection.ProgressPercent = projection.CurrentValue / target * 100
	}
	projection.ProgressPercentClamped = clampPercent(projection.ProgressPercent)
	projection.IsCompleted = projection.CurrentValue >= target
	projection.IsOverdue = months <= 0 && !projection.IsCompleted

	return projection, nil
}

// TargetCapital returns the capital whose yearly return at annualRatePercent
// pays monthlyIncome every month. defined is false when the rate is not positive.
func TargetCapital(monthlyIncome, annualRatePercent float64) (capital float64, defined bool) {
	if annualRatePercent <= 0 {
		return 0, false
	}
	return monthlyIncome * 12 / (annualRatePercent / 100), true
}

// MonthsBetween returns the number of whole months from "from" to "to".
// It is negative when "to" is before "from"; a month only counts once the
// day of month has been reached.
func MonthsBetween(from, to time.Time) int {
	from, to = entity.DateOnly(from), entity.DateOnly(to)

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	switch {
	case months > 0 && to.Day() < from.Day():
		months--
	case months < 0 && to.Day() > from.Day():
		months++
	}
	return months
}

// ValidateGoal enforces the goal invariants before a goal is stored.
func ValidateGoal(goal entity.Goal) error {
	if goal.DueDate.IsZero() {
		return domainerror.NewInvalidArgumentError(domainerror.ErrCodeMissingDueDate, "due date is required")
	}

	if !goal.IsFinancialFreedom {
		if goal.TargetAmount <= 0 {
			return domainerror.NewInvalidArgumentError(domainerror.ErrCodeNonPositiveTarget, "target amount must be positive")
		}
		if goal.CurrentAmount < 0 {
			return domainerror.NewInvalidArgumentError(domainerror.ErrCodeNegativeGoalValue, "current amount must not be negative")
		}
		return nil
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"target_monthly_income", goal.TargetMonthlyIncome},
		{"current_investments", goal.CurrentInvestments},
		{"annual_return_rate", goal.AnnualReturnRate},
		{"monthly_contribution", goal.MonthlyContribution},
	}
	for _, field := range fields {
		if field.value == nil {
			return domainerror.NewFinanceError(domainerror.ErrCodeMissingFreedomField, field.name+" is required", domainerror.ErrMissingData)
		}
		if *field.value < 0 || math.IsNaN(*field.value) {
			return domainerror.NewInvalidArgumentError(domainerror.ErrCodeNegativeGoalValue, field.name+" must not be negative")
		}
	}

	if *goal.AnnualReturnRate > MaxAnnualReturnRate {
		return domainerror.NewInvalidArgumentError(domainerror.ErrCodeRateOutOfRange, "annual_return_rate must not exceed 100")
	}

	return nil
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
