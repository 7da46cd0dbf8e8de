// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return fmt.Errorf("failed to find debt: %w", err)
	}

	if debt.UserID != input.UserID {
		return domainerror.NewDebtError(
			domainerror.ErrCodeUnauthorizedDebtAccess,
			"not authorized to delete this debt",
			domainerror.ErrUnauthorizedDebtAccess,
		)
	}

	if err := uc.debtRepo.Delete(ctx, input.DebtID); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	return nil
}
