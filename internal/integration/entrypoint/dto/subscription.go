package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/subscription"
)

// SubscriptionResponse represents the subscription state in API responses.
type SubscriptionResponse struct {
	State          string  `json:"state"`
	IsPremium      bool    `json:"is_premium"`
	Plan           string  `json:"plan,omitempty"`
	PremiumUntil   *string `json:"premium_until,omitempty"`
	GracePeriodEnd *string `json:"grace_period_end,omitempty"`
}

// ToSubscriptionResponse converts a GetSubscriptionOutput to SubscriptionResponse.
func ToSubscriptionResponse(output *subscription.GetSubscriptionOutput) SubscriptionResponse {
	return SubscriptionResponse{
		State:          string(output.State),
		IsPremium:      output.IsPremium,
		Plan:           output.Plan,
		PremiumUntil:   optionalDate(output.PremiumUntil),
		GracePeriodEnd: optionalDate(output.GracePeriodEnd),
	}
}
