// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightServiceUnavailable is returned when no AI service is configured.
	ErrInsightServiceUnavailable = errors.New("insight service is not available")

	// ErrMalformedInsight is returned when the generator's reply does not have the expected shape.
	ErrMalformedInsight = errors.New("malformed insight response")

	// ErrPremiumRequired is returned when a free user requests AI insights.
	ErrPremiumRequired = errors.New("premium subscription required")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Availability errors (01XXXX)
	ErrCodeInsightServiceUnavailable InsightErrorCode = "INS-010001"
	ErrCodePremiumRequired           InsightErrorCode = "INS-010002"

	// Processing errors (02XXXX)
	ErrCodeMalformedInsight  InsightErrorCode = "INS-020001"
	ErrCodeInsightGeneration InsightErrorCode = "INS-020002"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
