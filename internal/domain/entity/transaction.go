// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the type is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a financial transaction in the Finance Tracker system.
// Type is authoritative; Amount is always signed to agree with it
// (positive for income, negative for expenses).
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string // Free-text label, no referential integrity
	IsFixed     bool   // Recurring transaction
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The amount may be given
// signed or unsigned; it is stored with the sign implied by transactionType.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	isFixed bool,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        DateOnly(date),
		Description: description,
		Amount:      CanonicalAmount(amount, transactionType),
		Type:        transactionType,
		Category:    category,
		IsFixed:     isFixed,
		CreatedAt:   time.Now().UTC(),
	}
}

// CanonicalAmount returns amount signed according to the transaction type:
// income is non-negative, expense is non-positive.
func CanonicalAmount(amount decimal.Decimal, transactionType TransactionType) decimal.Decimal {
	if transactionType == TransactionTypeExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
