// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/email/templates"
)

// Service renders application emails and hands them to the sender.
type Service struct {
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	appBaseURL string
}

// NewService creates a new email service. appBaseURL is used for links
// back into the web app and may be empty.
func NewService(sender adapter.EmailSender, renderer *templates.Renderer, appBaseURL string) *Service {
	return &Service{
		sender:     sender,
		renderer:   renderer,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// SendMonthlyReview renders the monthly review digest and sends it.
func (s *Service) SendMonthlyReview(ctx context.Context, input adapter.MonthlyReviewEmailInput) (*adapter.SendEmailResult, error) {
	data := templates.MonthlyReviewData{
		UserName: input.Name,
		Year:     input.Year,
		Month:    input.Month,
		Score:    input.Score,
		Income:   input.Income,
		Expenses: input.Expenses,
		Balance:  input.Balance,
		Insights: make([]templates.ReviewInsightData, 0, len(input.Insights)),
	}
	if s.appBaseURL != "" {
		data.ReviewURL = s.appBaseURL + "/review"
	}
	for _, in := range input.Insights {
		data.Insights = append(data.Insights, templates.ReviewInsightData{
			Success: in.Kind == "success",
			Message: in.Message,
		})
	}

	html, text, err := s.renderer.Render(templates.TemplateMonthlyReview, data)
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render monthly review",
			fmt.Errorf("%w: %v", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	start := time.Now()
	result, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.To,
		Name:    input.Name,
		Subject: fmt.Sprintf("Sua revisão de %s de %d - Finance Tracker", templates.MonthName(input.Month), input.Year),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Monthly review email sent",
		"resend_id", result.ResendID,
		"year", input.Year,
		"month", int(input.Month),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
