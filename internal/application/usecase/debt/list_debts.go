// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID uuid.UUID
}

// DebtOutput is a debt with its derived figures.
type DebtOutput struct {
	Debt              *entity.Debt
	Remaining         decimal.Decimal
	InstallmentAmount decimal.Decimal
	Status            entity.DebtStatus
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts            []*DebtOutput
	TotalOutstanding decimal.Decimal
	OverdueCount     int
}

// ListDebtsUseCase handles listing debts with their remaining amounts.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
	clock    adapter.Clock
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository, clock adapter.Clock) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
		clock:    clock,
	}
}

// Execute performs the debt listing.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	now := uc.clock.Now()
	output := &ListDebtsOutput{
		Debts:            make([]*DebtOutput, 0, len(debts)),
		TotalOutstanding: decimal.Zero,
	}
	for _, d := range debts {
		out := toDebtOutput(d, now)
		output.Debts = append(output.Debts, out)
		output.TotalOutstanding = output.TotalOutstanding.Add(out.Remaining)
		if out.Status == entity.DebtStatusOverdue {
			output.OverdueCount++
		}
	}

	return output, nil
}
