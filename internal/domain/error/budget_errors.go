// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the limit is negative.
	ErrInvalidBudgetLimit = errors.New("invalid budget limit")

	// ErrInvalidBudgetName is returned when the budget name is empty or too long.
	ErrInvalidBudgetName = errors.New("invalid budget name")

	// ErrDefaultBudgetDeletion is returned when deleting one of the default envelopes.
	ErrDefaultBudgetDeletion = errors.New("default budgets cannot be deleted")

	// ErrUnauthorizedBudgetAccess is returned when the budget belongs to another user.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")

	// ErrInvalidBudgetPeriod is returned when year and month do not name a calendar month.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetLimit       BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetName        BudgetErrorCode = "BGT-010003"
	ErrCodeDefaultBudgetDeletion    BudgetErrorCode = "BGT-010004"
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields      BudgetErrorCode = "BGT-010006"
	ErrCodeInvalidBudgetPeriod      BudgetErrorCode = "BGT-010007"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
