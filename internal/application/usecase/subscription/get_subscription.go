// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// GetSubscriptionInput represents the input for reading a subscription.
type GetSubscriptionInput struct {
	UserID uuid.UUID
}

// GetSubscriptionOutput is the subscription state evaluated at request time.
type GetSubscriptionOutput struct {
	State          entity.SubscriptionState
	IsPremium      bool
	Plan           string
	PremiumUntil   *time.Time
	GracePeriodEnd *time.Time
}

// GetSubscriptionUseCase evaluates a user's subscription state.
type GetSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	clock            adapter.Clock
}

// NewGetSubscriptionUseCase creates a new GetSubscriptionUseCase instance.
func NewGetSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository, clock adapter.Clock) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
	}
}

// Execute reads the subscription and derives its state.
func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, input GetSubscriptionInput) (*GetSubscriptionOutput, error) {
	sub, err := uc.subscriptionRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	now := uc.clock.Now()
	output := &GetSubscriptionOutput{
		State:     sub.State(now),
		IsPremium: sub.IsPremium(now),
	}
	if sub != nil {
		output.Plan = sub.Plan
		output.PremiumUntil = &sub.PremiumUntil
		output.GracePeriodEnd = &sub.GracePeriodEnd
	}

	return output, nil
}
