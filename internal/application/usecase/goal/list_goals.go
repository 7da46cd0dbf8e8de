// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/domain/finance"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// GoalOutput is a stored goal together with its projection at the current time.
type GoalOutput struct {
	Goal       *entity.Goal
	Projection finance.GoalProjection
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := uc.clock.Now()
	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}

	for _, g := range goals {
		goalOutput, err := project(g, now)
		if err != nil {
			return nil, err
		}
		output.Goals = append(output.Goals, goalOutput)
	}

	return output, nil
}

// project evaluates a stored goal. Stored goals passed validation, so an
// evaluation error means the row was corrupted outside the API.
func project(g *entity.Goal, now time.Time) (*GoalOutput, error) {
	projection, err := finance.EvaluateGoal(*g, now)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate goal %s: %w", g.ID, err)
	}
	return &GoalOutput{Goal: g, Projection: projection}, nil
}
