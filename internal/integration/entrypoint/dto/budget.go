package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/budget"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a budget limit.
// Omitting categories keeps the stored (or default) categories.
type UpsertBudgetRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=50"`
	Limit      float64  `json:"limit" binding:"gte=0"`
	Categories []string `json:"categories,omitempty"`
}

// BudgetResponse represents a budget with its spending in API responses.
type BudgetResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Limit        string   `json:"limit"`
	Categories   []string `json:"categories"`
	IsDefault    bool     `json:"is_default"`
	IsConfigured bool     `json:"is_configured"`
	Actual       string   `json:"actual"`
	Remaining    string   `json:"remaining"`
	UsagePercent string   `json:"usage_percent"`
	IsExceeded   bool     `json:"is_exceeded"`
}

// SavedBudgetResponse represents a budget as stored, without spending figures.
type SavedBudgetResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Limit        string   `json:"limit"`
	Categories   []string `json:"categories"`
	IsDefault    bool     `json:"is_default"`
	IsConfigured bool     `json:"is_configured"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
	Budgets     []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a BudgetOutput to a BudgetResponse DTO.
func ToBudgetResponse(output *budget.BudgetOutput) BudgetResponse {
	b := output.Budget
	categories := b.Categories
	if categories == nil {
		categories = []string{}
	}
	return BudgetResponse{
		ID:           b.ID.String(),
		Name:         b.Name,
		Limit:        money(b.Limit),
		Categories:   categories,
		IsDefault:    b.IsDefault,
		IsConfigured: b.IsConfigured(),
		Actual:       money(output.Actual),
		Remaining:    money(output.Remaining),
		UsagePercent: money(output.UsagePercent),
		IsExceeded:   output.IsExceeded,
	}
}

// ToBudgetListResponse converts a ListBudgetsOutput to BudgetListResponse.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		PeriodStart: dateString(output.PeriodStart),
		PeriodEnd:   dateString(output.PeriodEnd),
		Budgets:     budgets,
	}
}

// ToSavedBudgetResponse converts a stored budget to a SavedBudgetResponse.
func ToSavedBudgetResponse(b *entity.Budget) SavedBudgetResponse {
	categories := b.Categories
	if categories == nil {
		categories = []string{}
	}
	return SavedBudgetResponse{
		ID:           b.ID.String(),
		Name:         b.Name,
		Limit:        money(b.Limit),
		Categories:   categories,
		IsDefault:    b.IsDefault,
		IsConfigured: b.IsConfigured(),
	}
}
