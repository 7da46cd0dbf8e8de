// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// MaxBudgetNameLength is the maximum allowed length for budget names.
const MaxBudgetNameLength = 50

// UpsertBudgetInput represents the input for creating or updating a budget by name.
// A nil Categories keeps the stored categories (or the envelope's defaults).
type UpsertBudgetInput struct {
	UserID     uuid.UUID
	Name       string
	Limit      decimal.Decimal
	Categories []string
}

// UpsertBudgetUseCase handles creating or updating a budget.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	defaults   []DefaultEnvelope
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, defaults []DefaultEnvelope) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo: budgetRepo,
		defaults:   defaults,
	}
}

// Execute performs the budget upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*entity.Budget, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxBudgetNameLength {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetName,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxBudgetNameLength),
			domainerror.ErrInvalidBudgetName,
		)
	}
	if input.Limit.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must not be negative",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	categories := normalizeCategories(input.Categories)

	budget, err := uc.budgetRepo.FindByUserAndName(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget == nil {
		envelope, isDefault := findDefault(uc.defaults, name)
		if categories == nil {
			categories = envelope.Categories
		}
		budget = entity.NewBudget(input.UserID, name, input.Limit, categories, isDefault)
	} else {
		budget.Limit = input.Limit
		if categories != nil {
			budget.Categories = categories
		}
		budget.UpdatedAt = time.Now().UTC()
	}

	if err := uc.budgetRepo.Save(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return budget, nil
}

// normalizeCategories trims labels and drops blanks and duplicates.
// nil stays nil so callers can tell "not provided" from "empty".
func normalizeCategories(categories []string) []string {
	if categories == nil {
		return nil
	}

	seen := make(map[string]bool, len(categories))
	result := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		result = append(result, c)
	}
	return result
}
