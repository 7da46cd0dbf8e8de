// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus represents the payment state of a debt.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pending"
	DebtStatusPaid    DebtStatus = "paid"
	DebtStatusOverdue DebtStatus = "overdue"
)

// Debt represents an installment debt.
type Debt struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	TotalAmount        decimal.Decimal
	PaidAmount         decimal.Decimal
	Installments       int
	CurrentInstallment int
	DueDate            time.Time // Due date of the current installment
	Status             DebtStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewDebt creates a new Debt entity.
func NewDebt(
	userID uuid.UUID,
	name string,
	totalAmount, paidAmount decimal.Decimal,
	installments, currentInstallment int,
	dueDate time.Time,
) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		TotalAmount:        totalAmount,
		PaidAmount:         paidAmount,
		Installments:       installments,
		CurrentInstallment: currentInstallment,
		DueDate:            DateOnly(dueDate),
		Status:             DebtStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Remaining returns the amount still owed, never negative.
func (d Debt) Remaining() decimal.Decimal {
	remaining := d.TotalAmount.Sub(d.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// InstallmentAmount returns the nominal value of one installment.
func (d Debt) InstallmentAmount() decimal.Decimal {
	if d.Installments <= 0 {
		return d.TotalAmount
	}
	return d.TotalAmount.Div(decimal.NewFromInt(int64(d.Installments))).Round(2)
}

// EffectiveStatus derives the status at now: paid once nothing remains,
// overdue after the current installment's due date, otherwise the stored status.
func (d Debt) EffectiveStatus(now time.Time) DebtStatus {
	if d.Remaining().IsZero() || d.Status == DebtStatusPaid {
		return DebtStatusPaid
	}
	if DateOnly(now).After(d.DueDate) {
		return DebtStatusOverdue
	}
	return d.Status
}
