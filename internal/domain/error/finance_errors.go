// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Finance calculation errors.
var (
	// ErrInvalidArgument is returned when a calculation receives a value outside its domain
	// (negative periods or rate, non-positive targets).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingData is returned when a financial-freedom goal lacks one of its required fields.
	ErrMissingData = errors.New("missing data")
)

// FinanceErrorCode defines error codes for finance calculation errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Invalid argument errors (01XXXX)
	ErrCodeNegativeRate      FinanceErrorCode = "FIN-010001"
	ErrCodeNegativePeriods   FinanceErrorCode = "FIN-010002"
	ErrCodeNonPositiveTarget FinanceErrorCode = "FIN-010003"
	ErrCodeRateOutOfRange    FinanceErrorCode = "FIN-010004"
	ErrCodeNegativeGoalValue FinanceErrorCode = "FIN-010005"
	ErrCodeMissingDueDate    FinanceErrorCode = "FIN-010006"

	// Missing data errors (02XXXX)
	ErrCodeMissingFreedomField FinanceErrorCode = "FIN-020001"
)

// FinanceError represents a finance calculation error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidArgumentError creates a FinanceError wrapping ErrInvalidArgument.
func NewInvalidArgumentError(code FinanceErrorCode, message string) *FinanceError {
	return NewFinanceError(code, message, ErrInvalidArgument)
}
