package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// InsightKind classifies a review insight.
type InsightKind string

const (
	InsightSuccess     InsightKind = "success"
	InsightImprovement InsightKind = "improvement"
)

// Score deductions of the monthly review.
const (
	maxScore              = 100
	penaltyOverspending   = 20
	penaltyNoMargin       = 5
	penaltyBudgetExceeded = 15
	penaltyNoActiveGoals  = 5
	penaltyNoGoalProgress = 10
)

// Insight is one observation of the monthly review.
type Insight struct {
	Kind    InsightKind
	Message string
}

// BudgetLimit is a spending limit over the categories accepted by Matches.
type BudgetLimit struct {
	Name    string
	Limit   decimal.Decimal
	Matches func(category string) bool
}

// BudgetLimitFromBudget builds the limit of a stored budget.
func BudgetLimitFromBudget(budget entity.Budget) BudgetLimit {
	categories := NewCategorySet(budget.Categories...)
	return BudgetLimit{
		Name:    budget.Name,
		Limit:   budget.Limit,
		Matches: categories.Contains,
	}
}

// ReviewInput is the snapshot scored by EvaluateReview.
// Transactions must already be restricted to the period.
type ReviewInput struct {
	PeriodStart  time.Time
	Transactions []entity.Transaction
	Goals        []entity.Goal
	Budgets      []BudgetLimit
	Now          time.Time
}

// ReviewResult is the consistency score of a period with its insights.
type ReviewResult struct {
	Score    int
	Insights []Insight
}

// EvaluateReview scores how well a period's spending matched its budgets and goals.
func EvaluateReview(input ReviewInput) ReviewResult {
	score := maxScore
	insights := make([]Insight, 0)

	totals := Totals(input.Transactions)
	switch totals.Expenses.Cmp(totals.Income) {
	case 1:
		score -= penaltyOverspending
		insights = append(insights, Insight{
			Kind: InsightImprovement,
			Message: fmt.Sprintf("Suas despesas (%s) superaram suas receitas (%s) neste periodo. Revise os gastos para voltar ao azul.",
				totals.Expenses.StringFixed(2), totals.Income.StringFixed(2)),
		})
	case 0:
		score -= penaltyNoMargin
		insights = append(insights, Insight{
			Kind:    InsightImprovement,
			Message: "Suas despesas igualaram suas receitas. Tente reservar uma parte da renda para poupar.",
		})
	default:
		insights = append(insights, Insight{
			Kind: InsightSuccess,
			Message: fmt.Sprintf("Voce fechou o periodo com saldo positivo de %s.",
				totals.Income.Sub(totals.Expenses).StringFixed(2)),
		})
	}

	for _, budget := range input.Budgets {
		if !budget.Limit.GreaterThan(decimal.Zero) || budget.Matches == nil {
			continue
		}

		actual := budgetActual(input.Transactions, budget.Matches)
		if actual.LessThanOrEqual(budget.Limit) {
			insights = append(insights, Insight{
				Kind: InsightSuccess,
				Message: fmt.Sprintf("Orcamento %q respeitado: %s de %s.",
					budget.Name, actual.StringFixed(2), budget.Limit.StringFixed(2)),
			})
			continue
		}

		score -= penaltyBudgetExceeded
		insights = append(insights, Insight{
			Kind: InsightImprovement,
			Message: fmt.Sprintf("Orcamento %q ultrapassado em %s (gasto %s de %s).",
				budget.Name, actual.Sub(budget.Limit).StringFixed(2), actual.StringFixed(2), budget.Limit.StringFixed(2)),
		})
	}

	active, progressing := activeGoals(input.Goals, input.PeriodStart, input.Now)
	switch {
	case active == 0:
		score -= penaltyNoActiveGoals
		insights = append(insights, Insight{
			Kind:    InsightImprovement,
			Message: "Voce nao tem metas ativas. Crie uma meta para dar direcao as suas economias.",
		})
	case progressing == 0:
		score -= penaltyNoGoalProgress
		insights = append(insights, Insight{
			Kind:    InsightImprovement,
			Message: "Nenhuma das suas metas ativas recebeu aportes. Comece guardando um valor, mesmo pequeno.",
		})
	default:
		insights = append(insights, Insight{
			Kind:    InsightSuccess,
			Message: fmt.Sprintf("%d meta(s) com progresso neste periodo.", progressing),
		})
	}

	if score < 0 {
		score = 0
	}

	return ReviewResult{Score: score, Insights: insights}
}

// activeGoals counts goals due on or after periodStart that are not completed
// at now, and how many of them already hold savings.
func activeGoals(goals []entity.Goal, periodStart, now time.Time) (active, progressing int) {
	start := entity.DateOnly(periodStart)
	for _, goal := range goals {
		if entity.DateOnly(goal.DueDate).Before(start) {
			continue
		}
		projection, err := EvaluateGoal(goal, now)
		if err == nil && projection.IsCompleted {
			continue
		}
		active++
		if goal.HasSavings() {
			progressing++
		}
	}
	return active, progressing
}
