// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets of a user, default envelopes first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndName retrieves a budget by user and name.
	// Returns nil without error when it does not exist.
	FindByUserAndName(ctx context.Context, userID uuid.UUID, name string) (*entity.Budget, error)

	// Save inserts or updates a budget.
	Save(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
