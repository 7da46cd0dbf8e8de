package dto

import (
	"time"

	"github.com/finance-tracker/planner/internal/application/usecase/insight"
)

// InsightResponse represents AI-generated insights in API responses.
type InsightResponse struct {
	Dicas       []string  `json:"dicas"`
	Previsoes   []string  `json:"previsoes"`
	Resumo      string    `json:"resumo"`
	GeneratedAt time.Time `json:"generated_at"`
	Cached      bool      `json:"cached"`
}

// ProcessingErrorResponse represents an AI processing error in the response.
type ProcessingErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Timestamp string `json:"timestamp"`
}

// ToInsightResponse converts a GenerateInsightsOutput to InsightResponse.
func ToInsightResponse(output *insight.GenerateInsightsOutput) InsightResponse {
	return InsightResponse{
		Dicas:       output.Insight.Dicas,
		Previsoes:   output.Insight.Previsoes,
		Resumo:      output.Insight.Resumo,
		GeneratedAt: output.Insight.GeneratedAt,
		Cached:      output.Cached,
	}
}

// ToProcessingErrorResponse converts a classified AI failure.
func ToProcessingErrorResponse(err *insight.ProcessingError) ProcessingErrorResponse {
	return ProcessingErrorResponse{
		Code:      err.Code,
		Message:   err.Message,
		Retryable: err.Retryable,
		Timestamp: err.Timestamp.Format(time.RFC3339),
	}
}
