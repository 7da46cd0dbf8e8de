// Package budget contains budget-related use cases.
package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// DefaultEnvelope describes a budget every user has, whether or not it was saved.
type DefaultEnvelope struct {
	Name       string
	Limit      decimal.Decimal
	Categories []string
}

// WithDefaults returns the stored budgets plus an unsaved budget for each
// default envelope the user has not stored yet. Defaults come first.
func WithDefaults(userID uuid.UUID, stored []*entity.Budget, defaults []DefaultEnvelope) []*entity.Budget {
	byName := make(map[string]*entity.Budget, len(stored))
	for _, b := range stored {
		byName[b.Name] = b
	}

	result := make([]*entity.Budget, 0, len(stored)+len(defaults))
	used := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		used[d.Name] = true
		if b, ok := byName[d.Name]; ok {
			result = append(result, b)
			continue
		}
		result = append(result, entity.NewBudget(userID, d.Name, d.Limit, d.Categories, true))
	}

	for _, b := range stored {
		if !used[b.Name] {
			result = append(result, b)
		}
	}

	return result
}

func findDefault(defaults []DefaultEnvelope, name string) (DefaultEnvelope, bool) {
	for _, d := range defaults {
		if d.Name == name {
			return d, true
		}
	}
	return DefaultEnvelope{}, false
}
