// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// MaxDebtNameLength is the maximum allowed length for debt names.
const MaxDebtNameLength = 100

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID             uuid.UUID
	Name               string
	TotalAmount        decimal.Decimal
	PaidAmount         decimal.Decimal
	Installments       int
	CurrentInstallment int
	DueDate            time.Time
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
	clock    adapter.Clock
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, clock adapter.Clock) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
		clock:    clock,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*DebtOutput, error) {
	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}

	debt := entity.NewDebt(
		input.UserID,
		input.Name,
		input.TotalAmount,
		input.PaidAmount,
		input.Installments,
		input.CurrentInstallment,
		input.DueDate,
	)
	if debt.Remaining().IsZero() {
		debt.Status = entity.DebtStatusPaid
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	slog.Info("Debt created", "debt_id", debt.ID, "user_id", debt.UserID)

	return toDebtOutput(debt, uc.clock.Now()), nil
}

func validateCreateInput(input *CreateDebtInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.DueDate.IsZero() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtFields,
			"name and due_date are required",
			nil,
		)
	}
	if len(input.Name) > MaxDebtNameLength {
		return domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtFields,
			fmt.Sprintf("name must not exceed %d characters", MaxDebtNameLength),
			nil,
		)
	}

	if !input.TotalAmount.IsPositive() || input.PaidAmount.IsNegative() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"total_amount must be positive and paid_amount must not be negative",
			domainerror.ErrInvalidDebtAmount,
		)
	}

	if input.Installments < 1 {
		input.Installments = 1
	}
	if input.CurrentInstallment == 0 {
		input.CurrentInstallment = 1
	}
	if input.CurrentInstallment < 1 || input.CurrentInstallment > input.Installments {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidInstallments,
			"current_installment must be between 1 and installments",
			domainerror.ErrInvalidInstallments,
		)
	}

	return nil
}

func toDebtOutput(d *entity.Debt, now time.Time) *DebtOutput {
	return &DebtOutput{
		Debt:              d,
		Remaining:         d.Remaining(),
		InstallmentAmount: d.InstallmentAmount(),
		Status:            d.EffectiveStatus(now),
	}
}
