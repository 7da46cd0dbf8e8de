// Package review contains the monthly review use cases.
package review

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// EmailMonthlyReviewInput represents the input for emailing a monthly review.
type EmailMonthlyReviewInput struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Year   int
	Month  time.Month
}

// EmailMonthlyReviewOutput represents the output of emailing a monthly review.
type EmailMonthlyReviewOutput struct {
	Review   *GetMonthlyReviewOutput
	ResendID string
}

// EmailMonthlyReviewUseCase computes a monthly review and emails the digest.
type EmailMonthlyReviewUseCase struct {
	getReview    *GetMonthlyReviewUseCase
	emailService adapter.EmailService
}

// NewEmailMonthlyReviewUseCase creates a new EmailMonthlyReviewUseCase instance.
func NewEmailMonthlyReviewUseCase(getReview *GetMonthlyReviewUseCase, emailService adapter.EmailService) *EmailMonthlyReviewUseCase {
	return &EmailMonthlyReviewUseCase{
		getReview:    getReview,
		emailService: emailService,
	}
}

// Execute performs the review and sends it.
func (uc *EmailMonthlyReviewUseCase) Execute(ctx context.Context, input EmailMonthlyReviewInput) (*EmailMonthlyReviewOutput, error) {
	to := strings.TrimSpace(input.Email)
	if to == "" {
		return nil, domainerror.NewReviewError(
			domainerror.ErrCodeMissingRecipient,
			"recipient email is required",
			domainerror.ErrMissingRecipient,
		)
	}

	review, err := uc.getReview.Execute(ctx, GetMonthlyReviewInput{
		UserID: input.UserID,
		Year:   input.Year,
		Month:  input.Month,
	})
	if err != nil {
		return nil, err
	}

	insights := make([]adapter.ReviewEmailInsight, 0, len(review.Insights))
	for _, in := range review.Insights {
		insights = append(insights, adapter.ReviewEmailInsight{
			Kind:    string(in.Kind),
			Message: in.Message,
		})
	}

	result, err := uc.emailService.SendMonthlyReview(ctx, adapter.MonthlyReviewEmailInput{
		To:       to,
		Name:     input.Name,
		Year:     review.Year,
		Month:    review.Month,
		Score:    review.Score,
		Income:   review.Totals.Income,
		Expenses: review.Totals.Expenses,
		Balance:  review.Totals.Balance,
		Insights: insights,
	})
	if err != nil {
		slog.Error("Failed to send monthly review",
			"user_id", input.UserID,
			"year", review.Year,
			"month", int(review.Month),
			"retryable", domainerror.IsRetryableEmailError(err),
			"error", err,
		)
		return nil, domainerror.NewReviewError(
			domainerror.ErrCodeReviewEmailFailed,
			"failed to send monthly review email",
			err,
		)
	}

	slog.Info("Monthly review sent",
		"user_id", input.UserID,
		"resend_id", result.ResendID,
		"score", review.Score,
	)

	return &EmailMonthlyReviewOutput{
		Review:   review,
		ResendID: result.ResendID,
	}, nil
}
