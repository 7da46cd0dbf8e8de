// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription lookups.
type SubscriptionRepository interface {
	// FindByUserID retrieves the subscription of a user.
	// Returns nil without error when the user never subscribed.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)
}
