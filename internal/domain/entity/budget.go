// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Names of the default budget envelopes every user has.
const (
	BudgetNameMisc = "misc"
	BudgetNameFood = "food"
)

// Budget represents a named spending envelope: a limit over a set of
// transaction categories. Default envelopes and custom budgets share the shape.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Limit      decimal.Decimal // Zero means "not configured"
	Categories []string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, name string, limit decimal.Decimal, categories []string, isDefault bool) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Limit:      limit,
		Categories: append([]string(nil), categories...),
		IsDefault:  isDefault,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsConfigured reports whether a spending limit has been set.
func (b Budget) IsConfigured() bool {
	return b.Limit.GreaterThan(decimal.Zero)
}

// IsDefaultBudgetName reports whether name is one of the default envelopes.
func IsDefaultBudgetName(name string) bool {
	return name == BudgetNameMisc || name == BudgetNameFood
}
