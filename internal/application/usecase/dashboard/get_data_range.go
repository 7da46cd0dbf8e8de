// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

// GetDataRangeInput represents the input for getting data range.
type GetDataRangeInput struct {
	UserID uuid.UUID
}

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate *time.Time
	NewestDate *time.Time
	HasData    bool
}

// GetDataRangeUseCase handles getting the date range of user's transactions.
type GetDataRangeUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(transactionRepo adapter.TransactionRepository) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the date range of user's transactions.
func (uc *GetDataRangeUseCase) Execute(
	ctx context.Context,
	input GetDataRangeInput,
) (*GetDataRangeOutput, error) {
	oldest, newest, err := uc.transactionRepo.GetDateRange(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	return &GetDataRangeOutput{
		OldestDate: oldest,
		NewestDate: newest,
		HasData:    oldest != nil && newest != nil,
	}, nil
}
