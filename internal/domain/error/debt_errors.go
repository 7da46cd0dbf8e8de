// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidDebtAmount is returned when the total is not positive or the paid amount is negative.
	ErrInvalidDebtAmount = errors.New("invalid debt amount")

	// ErrInvalidInstallments is returned when installment counters are inconsistent.
	ErrInvalidInstallments = errors.New("invalid installments")

	// ErrUnauthorizedDebtAccess is returned when the debt belongs to another user.
	ErrUnauthorizedDebtAccess = errors.New("unauthorized access to debt")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDebtNotFound           DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtAmount      DebtErrorCode = "DBT-010002"
	ErrCodeInvalidInstallments    DebtErrorCode = "DBT-010003"
	ErrCodeUnauthorizedDebtAccess DebtErrorCode = "DBT-010004"
	ErrCodeMissingDebtFields      DebtErrorCode = "DBT-010005"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
