// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Review domain errors.
var (
	// ErrInvalidReviewPeriod is returned when year or month are out of range.
	ErrInvalidReviewPeriod = errors.New("invalid review period")

	// ErrMissingRecipient is returned when the review email has no recipient address.
	ErrMissingRecipient = errors.New("recipient email is required")
)

// ReviewErrorCode defines error codes for review errors.
// Format: RVW-XXYYYY where XX is category and YYYY is specific error.
type ReviewErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReviewPeriod ReviewErrorCode = "RVW-010001"
	ErrCodeMissingRecipient    ReviewErrorCode = "RVW-010002"

	// Delivery errors (02XXXX)
	ErrCodeReviewEmailFailed ReviewErrorCode = "RVW-020001"
)

// ReviewError represents a review error with code and message.
type ReviewError struct {
	Code    ReviewErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReviewError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReviewError) Unwrap() error {
	return e.Err
}

// NewReviewError creates a new ReviewError with the given code and message.
func NewReviewError(code ReviewErrorCode, message string, err error) *ReviewError {
	return &ReviewError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
