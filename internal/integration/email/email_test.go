package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/email/templates"
)

func TestService_SendMonthlyReview(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	sender := NewMockEmailSender()
	svc := NewService(sender, renderer, "https://app.example.com/")

	result, err := svc.SendMonthlyReview(context.Background(), adapter.MonthlyReviewEmailInput{
		To:       "ana@example.com",
		Name:     "Ana",
		Year:     2024,
		Month:    time.March,
		Score:    60,
		Income:   decimal.NewFromInt(1000),
		Expenses: decimal.RequireFromString("1234.5"),
		Balance:  decimal.RequireFromString("-234.5"),
		Insights: []adapter.ReviewEmailInsight{
			{Kind: "improvement", Message: "Despesas acima da receita"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "mock-1", result.ResendID)
	require.Len(t, sender.SentEmails, 1)

	sent := sender.SentEmails[0]
	assert.Contains(t, sent.Subject, "março de 2024")
	assert.Contains(t, sent.HTML, "R$ 1.234,50")
	assert.Contains(t, sent.Text, "-R$ 234,50")
	assert.Contains(t, sent.Text, "[!] Despesas acima da receita")
	assert.Contains(t, sent.HTML, `href="https://app.example.com/review"`)
}

func TestService_SendMonthlyReview_Failure(t *testing.T) {
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("429 too many requests"), false)

	_, err = NewService(sender, renderer, "").SendMonthlyReview(context.Background(), adapter.MonthlyReviewEmailInput{To: "ana@example.com", Month: time.May, Year: 2024})

	var emailErr *domainerror.EmailError
	require.True(t, errors.As(err, &emailErr))
	assert.Equal(t, domainerror.ErrCodeTemporaryEmailFailure, emailErr.Code)
	assert.ErrorIs(t, err, domainerror.ErrTemporaryEmailFailure)
}

func TestClassifySendError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode domainerror.EmailErrorCode
	}{
		{"unauthorized", errors.New("401 unauthorized"), domainerror.ErrCodePermanentEmailFailure},
		{"validation", errors.New("422 validation_error: invalid to field"), domainerror.ErrCodePermanentEmailFailure},
		{"rate limit", errors.New("429 rate_limit_exceeded"), domainerror.ErrCodeTemporaryEmailFailure},
		{"server error", errors.New("503 service unavailable"), domainerror.ErrCodeTemporaryEmailFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var emailErr *domainerror.EmailError
			err := classifySendError(tt.err)
			require.True(t, errors.As(err, &emailErr))
			assert.Equal(t, tt.wantCode, emailErr.Code)
			assert.Equal(t, tt.wantCode == domainerror.ErrCodeTemporaryEmailFailure, domainerror.IsRetryableEmailError(err))
		})
	}
}
