// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionState is the premium lifecycle state at a point in time.
type SubscriptionState string

const (
	SubscriptionStateFree        SubscriptionState = "free"
	SubscriptionStateActive      SubscriptionState = "active"
	SubscriptionStateGracePeriod SubscriptionState = "grace_period"
	SubscriptionStateExpired     SubscriptionState = "expired"
)

// Subscription holds the premium timestamps of a user. The state is never
// stored: it is derived from the timestamps on every access.
type Subscription struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Plan           string
	PremiumUntil   time.Time
	GracePeriodEnd time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// State evaluates the subscription at now:
// active -> grace_period -> expired.
func (s *Subscription) State(now time.Time) SubscriptionState {
	if s == nil {
		return SubscriptionStateFree
	}
	switch {
	case now.Before(s.PremiumUntil):
		return SubscriptionStateActive
	case now.Before(s.GracePeriodEnd):
		return SubscriptionStateGracePeriod
	default:
		return SubscriptionStateExpired
	}
}

// IsPremium reports whether premium features are available at now.
func (s *Subscription) IsPremium(now time.Time) bool {
	state := s.State(now)
	return state == SubscriptionStateActive || state == SubscriptionStateGracePeriod
}
