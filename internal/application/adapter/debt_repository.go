// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByUserID retrieves all debts of a user, ordered by due date.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// Delete removes a debt from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
