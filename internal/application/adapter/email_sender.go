// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReviewEmailInsight is one insight line of the review digest.
type ReviewEmailInsight struct {
	Kind    string
	Message string
}

// MonthlyReviewEmailInput represents the data rendered in the monthly review digest.
type MonthlyReviewEmailInput struct {
	To       string
	Name     string
	Year     int
	Month    time.Month
	Score    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
	Insights []ReviewEmailInsight
}

// EmailService defines the interface for rendering and delivering application emails.
type EmailService interface {
	// SendMonthlyReview renders the monthly review digest and sends it.
	SendMonthlyReview(ctx context.Context, input MonthlyReviewEmailInput) (*SendEmailResult, error)
}
