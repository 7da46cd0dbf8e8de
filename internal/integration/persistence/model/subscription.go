// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
// Subscriptions are written by the billing integration; this service only reads them.
type SubscriptionModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Plan           string    `gorm:"type:varchar(30);not null"`
	PremiumUntil   time.Time `gorm:"not null"`
	GracePeriodEnd time.Time `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:             m.ID,
		UserID:         m.UserID,
		Plan:           m.Plan,
		PremiumUntil:   m.PremiumUntil,
		GracePeriodEnd: m.GracePeriodEnd,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:             subscription.ID,
		UserID:         subscription.UserID,
		Plan:           subscription.Plan,
		PremiumUntil:   subscription.PremiumUntil,
		GracePeriodEnd: subscription.GracePeriodEnd,
		CreatedAt:      subscription.CreatedAt,
		UpdatedAt:      subscription.UpdatedAt,
	}
}
