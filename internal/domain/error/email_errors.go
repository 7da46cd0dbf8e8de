// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Email delivery errors. Every provider failure wraps exactly one of
// ErrPermanentEmailFailure or ErrTemporaryEmailFailure.
var (
	// ErrTemplateRenderFailed is returned when the digest templates cannot be executed.
	ErrTemplateRenderFailed = errors.New("failed to render email template")

	// ErrPermanentEmailFailure is returned when the provider rejects the message
	// and resending it unchanged would fail again.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned for throttling, timeouts and provider outages.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Delivery errors (02XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// Template errors (03XXXX)
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// Retryable reports whether sending the same message again may succeed.
func (e *EmailError) Retryable() bool {
	return e.Code == ErrCodeTemporaryEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsRetryableEmailError reports whether err carries a temporary delivery failure.
func IsRetryableEmailError(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) && emailErr.Retryable()
}
