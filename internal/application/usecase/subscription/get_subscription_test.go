package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-tracker/planner/internal/application/adapter/mocks"
	"github.com/finance-tracker/planner/internal/application/usecase/subscription"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

func TestGetSubscriptionUseCase_Execute(t *testing.T) {
	now := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	tests := []struct {
		name          string
		stored        *entity.Subscription
		expectedState entity.SubscriptionState
		expectPremium bool
	}{
		{
			name:          "never subscribed",
			expectedState: entity.SubscriptionStateFree,
		},
		{
			name: "active",
			stored: &entity.Subscription{
				Plan:           "monthly",
				PremiumUntil:   now.AddDate(0, 0, 10),
				GracePeriodEnd: now.AddDate(0, 0, 17),
			},
			expectedState: entity.SubscriptionStateActive,
			expectPremium: true,
		},
		{
			name: "grace period",
			stored: &entity.Subscription{
				PremiumUntil:   now.AddDate(0, 0, -1),
				GracePeriodEnd: now.AddDate(0, 0, 6),
			},
			expectedState: entity.SubscriptionStateGracePeriod,
			expectPremium: true,
		},
		{
			name: "expired",
			stored: &entity.Subscription{
				PremiumUntil:   now.AddDate(0, 0, -10),
				GracePeriodEnd: now,
			},
			expectedState: entity.SubscriptionStateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSubscriptionRepository(ctrl)
			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now)
			repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(tt.stored, nil)

			out, err := subscription.NewGetSubscriptionUseCase(repo, clock).Execute(context.Background(), subscription.GetSubscriptionInput{UserID: userID})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedState, out.State)
			assert.Equal(t, tt.expectPremium, out.IsPremium)
			if tt.stored == nil {
				assert.Nil(t, out.PremiumUntil)
			}
		})
	}
}
