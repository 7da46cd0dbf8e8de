package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/review"
)

// EmailReviewRequest represents the request body for emailing a review.
// Email defaults to the address in the access token.
type EmailReviewRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Name  string `json:"name,omitempty"`
}

// ReviewInsightResponse is one observation of the review.
type ReviewInsightResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// MonthlyReviewResponse represents the response for the monthly review API.
type MonthlyReviewResponse struct {
	Year        int                     `json:"year"`
	Month       int                     `json:"month"`
	PeriodStart string                  `json:"period_start"`
	PeriodEnd   string                  `json:"period_end"`
	Totals      TotalsResponse          `json:"totals"`
	Score       int                     `json:"score"`
	Insights    []ReviewInsightResponse `json:"insights"`
}

// EmailReviewResponse represents the response after emailing a review.
type EmailReviewResponse struct {
	Message  string                `json:"message"`
	ResendID string                `json:"resend_id"`
	Review   MonthlyReviewResponse `json:"review"`
}

// ToMonthlyReviewResponse converts a GetMonthlyReviewOutput to MonthlyReviewResponse.
func ToMonthlyReviewResponse(output *review.GetMonthlyReviewOutput) MonthlyReviewResponse {
	insights := make([]ReviewInsightResponse, len(output.Insights))
	for i, in := range output.Insights {
		insights[i] = ReviewInsightResponse{Kind: string(in.Kind), Message: in.Message}
	}
	return MonthlyReviewResponse{
		Year:        output.Year,
		Month:       int(output.Month),
		PeriodStart: dateString(output.PeriodStart),
		PeriodEnd:   dateString(output.PeriodEnd),
		Totals:      ToTotalsResponse(output.Totals),
		Score:       output.Score,
		Insights:    insights,
	}
}
