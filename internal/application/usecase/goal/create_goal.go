// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// CreateGoalInput represents the input for goal creation.
// Plain goals use TargetAmount/CurrentAmount; financial-freedom goals use
// the four pointer fields.
type CreateGoalInput struct {
	UserID             uuid.UUID
	Name               string
	DueDate            time.Time
	IsFinancialFreedom bool

	TargetAmount  float64
	CurrentAmount float64

	TargetMonthlyIncome *float64
	CurrentInvestments  *float64
	AnnualReturnRate    *float64
	MonthlyContribution *float64
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*GoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxGoalNameLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxGoalNameLength),
			domainerror.ErrInvalidGoal,
		)
	}

	goal := entity.NewGoal(input.UserID, name, input.DueDate, input.TargetAmount, input.CurrentAmount)
	if input.IsFinancialFreedom {
		goal.IsFinancialFreedom = true
		goal.TargetAmount = 0
		goal.CurrentAmount = 0
		goal.TargetMonthlyIncome = input.TargetMonthlyIncome
		goal.CurrentInvestments = input.CurrentInvestments
		goal.AnnualReturnRate = input.AnnualReturnRate
		goal.MonthlyContribution = input.MonthlyContribution
	}

	if err := finance.ValidateGoal(*goal); err != nil {
		return nil, toGoalError(err)
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return project(goal, uc.clock.Now())
}

// toGoalError maps a goal validation failure onto the goal error codes.
func toGoalError(err error) error {
	code := domainerror.ErrCodeInvalidGoal
	if errors.Is(err, domainerror.ErrMissingData) {
		code = domainerror.ErrCodeIncompleteFreedomGoal
	}

	var finErr *domainerror.FinanceError
	if errors.As(err, &finErr) {
		return domainerror.NewGoalError(code, finErr.Message, err)
	}
	return domainerror.NewGoalError(code, "invalid goal", err)
}
