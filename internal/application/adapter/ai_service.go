// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// InsightTransaction is the snapshot view of a transaction sent to the AI service.
type InsightTransaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	IsFixed     bool   `json:"is_fixed"`
}

// InsightBudget is the snapshot view of a budget sent to the AI service.
type InsightBudget struct {
	Name       string   `json:"name"`
	Limit      string   `json:"limit"`
	Spent      string   `json:"spent"`
	Categories []string `json:"categories"`
}

// InsightGoal is the snapshot view of a goal sent to the AI service.
type InsightGoal struct {
	Name               string  `json:"name"`
	DueDate            string  `json:"due_date"`
	IsFinancialFreedom bool    `json:"is_financial_freedom"`
	TargetValue        float64 `json:"target_value"`
	CurrentValue       float64 `json:"current_value"`
	ProgressPercent    float64 `json:"progress_percent"`
	Status             string  `json:"status"`
}

// InsightSnapshot is the request payload of an insight generation.
type InsightSnapshot struct {
	Transactions []InsightTransaction `json:"transactions"`
	Budgets      []InsightBudget      `json:"budgets"`
	Goals        []InsightGoal        `json:"goals"`
}

// AIInsightService defines the interface for AI-powered financial insights.
type AIInsightService interface {
	// Generate asks the text-generation service for tips, forecasts and a summary.
	Generate(ctx context.Context, snapshot *InsightSnapshot) (*entity.AIInsight, error)

	// IsAvailable checks if the AI service is available and configured.
	IsAvailable() bool
}

// InsightCache stores generated insights keyed by snapshot fingerprint.
type InsightCache interface {
	// Get returns the cached insight, or nil without error on a miss.
	Get(ctx context.Context, key string) (*entity.AIInsight, error)

	// Set stores an insight under key.
	Set(ctx context.Context, key string, insight *entity.AIInsight) error
}
