package dto

import (
	"time"

	"github.com/finance-tracker/planner/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
// Plain goals send target/current amounts; financial-freedom goals must send
// all four plan fields.
type CreateGoalRequest struct {
	Name               string  `json:"name" binding:"required,min=1,max=100"`
	DueDate            string  `json:"due_date" binding:"required"`
	IsFinancialFreedom bool    `json:"is_financial_freedom"`
	TargetAmount       float64 `json:"target_amount"`
	CurrentAmount      float64 `json:"current_amount"`

	TargetMonthlyIncome *float64 `json:"target_monthly_income,omitempty"`
	CurrentInvestments  *float64 `json:"current_investments,omitempty"`
	AnnualReturnRate    *float64 `json:"annual_return_rate,omitempty"`
	MonthlyContribution *float64 `json:"monthly_contribution,omitempty"`
}

// GoalProjectionResponse is the evaluated state of a goal.
type GoalProjectionResponse struct {
	Status                 string  `json:"status"`
	ProgressPercent        float64 `json:"progress_percent"`
	ProgressPercentClamped float64 `json:"progress_percent_clamped"`
	TargetValue            float64 `json:"target_value"`
	CurrentValue           float64 `json:"current_value"`
	IsCompleted            bool    `json:"is_completed"`
	IsOverdue              bool    `json:"is_overdue"`
	MonthsRemaining        *int    `json:"months_remaining,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                  string                 `json:"id"`
	UserID              string                 `json:"user_id"`
	Name                string                 `json:"name"`
	DueDate             string                 `json:"due_date"`
	IsFinancialFreedom  bool                   `json:"is_financial_freedom"`
	TargetAmount        float64                `json:"target_amount"`
	CurrentAmount       float64                `json:"current_amount"`
	TargetMonthlyIncome *float64               `json:"target_monthly_income,omitempty"`
	CurrentInvestments  *float64               `json:"current_investments,omitempty"`
	AnnualReturnRate    *float64               `json:"annual_return_rate,omitempty"`
	MonthlyContribution *float64               `json:"monthly_contribution,omitempty"`
	Projection          GoalProjectionResponse `json:"projection"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	g, p := output.Goal, output.Projection
	return GoalResponse{
		ID:                  g.ID.String(),
		UserID:              g.UserID.String(),
		Name:                g.Name,
		DueDate:             dateString(g.DueDate),
		IsFinancialFreedom:  g.IsFinancialFreedom,
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		TargetMonthlyIncome: g.TargetMonthlyIncome,
		CurrentInvestments:  g.CurrentInvestments,
		AnnualReturnRate:    g.AnnualReturnRate,
		MonthlyContribution: g.MonthlyContribution,
		Projection: GoalProjectionResponse{
			Status:                 string(p.Status),
			ProgressPercent:        p.ProgressPercent,
			ProgressPercentClamped: p.ProgressPercentClamped,
			TargetValue:            p.TargetValue,
			CurrentValue:           p.CurrentValue,
			IsCompleted:            p.IsCompleted,
			IsOverdue:              p.IsOverdue,
			MonthsRemaining:        p.MonthsRemaining,
		},
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToGoalListResponse converts a ListGoalsOutput to GoalListResponse.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: goals}
}
