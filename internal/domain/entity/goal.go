// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a savings goal. A goal is either a plain goal
// (TargetAmount/CurrentAmount) or a financial-freedom goal, in which case the
// four pointer fields describe the plan and the plain amounts are ignored.
type Goal struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	DueDate            time.Time
	IsFinancialFreedom bool

	// Plain goal
	TargetAmount  float64
	CurrentAmount float64

	// Financial-freedom goal; nil means "not provided yet"
	TargetMonthlyIncome *float64
	CurrentInvestments  *float64
	AnnualReturnRate    *float64 // Percent, e.g. 8 for 8% a year
	MonthlyContribution *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGoal creates a new plain Goal entity.
func NewGoal(userID uuid.UUID, name string, dueDate time.Time, targetAmount, currentAmount float64) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		DueDate:       DateOnly(dueDate),
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// FinancialFreedomPlan groups the inputs of a financial-freedom goal.
type FinancialFreedomPlan struct {
	TargetMonthlyIncome float64
	CurrentInvestments  float64
	AnnualReturnRate    float64
	MonthlyContribution float64
}

// NewFinancialFreedomGoal creates a new financial-freedom Goal entity.
func NewFinancialFreedomGoal(userID uuid.UUID, name string, dueDate time.Time, plan FinancialFreedomPlan) *Goal {
	goal := NewGoal(userID, name, dueDate, 0, 0)
	goal.IsFinancialFreedom = true
	goal.TargetMonthlyIncome = &plan.TargetMonthlyIncome
	goal.CurrentInvestments = &plan.CurrentInvestments
	goal.AnnualReturnRate = &plan.AnnualReturnRate
	goal.MonthlyContribution = &plan.MonthlyContribution
	return goal
}

// FreedomPlan returns the financial-freedom inputs when all of them are
// present. ok is false for plain goals and for incomplete plans.
func (g Goal) FreedomPlan() (plan FinancialFreedomPlan, ok bool) {
	if !g.IsFinancialFreedom ||
		g.TargetMonthlyIncome == nil ||
		g.CurrentInvestments == nil ||
		g.AnnualReturnRate == nil ||
		g.MonthlyContribution == nil {
		return FinancialFreedomPlan{}, false
	}

	return FinancialFreedomPlan{
		TargetMonthlyIncome: *g.TargetMonthlyIncome,
		CurrentInvestments:  *g.CurrentInvestments,
		AnnualReturnRate:    *g.AnnualReturnRate,
		MonthlyContribution: *g.MonthlyContribution,
	}, true
}

// HasSavings reports whether money has already been put towards the goal.
func (g Goal) HasSavings() bool {
	if g.IsFinancialFreedom {
		return g.CurrentInvestments != nil && *g.CurrentInvestments > 0
	}
	return g.CurrentAmount > 0
}
