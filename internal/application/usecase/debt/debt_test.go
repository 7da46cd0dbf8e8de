package debt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-tracker/planner/internal/application/adapter/mocks"
	"github.com/finance-tracker/planner/internal/application/usecase/debt"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

var now = time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC)

func newClock(ctrl *gomock.Controller) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return clock
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestListDebtsUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDebtRepository(ctrl)
	userID := uuid.New()

	pending := entity.NewDebt(userID, "Notebook", d(3000), d(1000), 10, 4, now.AddDate(0, 0, 5))
	overdue := entity.NewDebt(userID, "Cartao", d(800), d(200), 4, 2, now.AddDate(0, 0, -3))
	paid := entity.NewDebt(userID, "Celular", d(1200), d(1500), 12, 12, now.AddDate(0, 0, -30))

	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return([]*entity.Debt{pending, overdue, paid}, nil)

	out, err := debt.NewListDebtsUseCase(repo, newClock(ctrl)).Execute(context.Background(), debt.ListDebtsInput{UserID: userID})

	require.NoError(t, err)
	require.Len(t, out.Debts, 3)

	assert.Equal(t, entity.DebtStatusPending, out.Debts[0].Status)
	assert.True(t, out.Debts[0].InstallmentAmount.Equal(d(300)))

	assert.Equal(t, entity.DebtStatusOverdue, out.Debts[1].Status)

	// Overpaid debts never report a negative remainder.
	assert.Equal(t, entity.DebtStatusPaid, out.Debts[2].Status)
	assert.True(t, out.Debts[2].Remaining.IsZero())

	assert.True(t, out.TotalOutstanding.Equal(d(2600)), "got %s", out.TotalOutstanding)
	assert.Equal(t, 1, out.OverdueCount)
}

func TestCreateDebtUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	due := now.AddDate(0, 1, 0)

	tests := []struct {
		name         string
		input        debt.CreateDebtInput
		expectCreate bool
		expectedCode domainerror.DebtErrorCode
	}{
		{
			name:         "single installment defaults",
			input:        debt.CreateDebtInput{UserID: userID, Name: "Emprestimo", TotalAmount: d(500), DueDate: due},
			expectCreate: true,
		},
		{
			name:         "missing name",
			input:        debt.CreateDebtInput{UserID: userID, TotalAmount: d(500), DueDate: due},
			expectedCode: domainerror.ErrCodeMissingDebtFields,
		},
		{
			name:         "zero total",
			input:        debt.CreateDebtInput{UserID: userID, Name: "X", DueDate: due},
			expectedCode: domainerror.ErrCodeInvalidDebtAmount,
		},
		{
			name:         "negative paid amount",
			input:        debt.CreateDebtInput{UserID: userID, Name: "X", TotalAmount: d(10), PaidAmount: d(-1), DueDate: due},
			expectedCode: domainerror.ErrCodeInvalidDebtAmount,
		},
		{
			name: "installment out of range",
			input: debt.CreateDebtInput{
				UserID: userID, Name: "X", TotalAmount: d(10), Installments: 3, CurrentInstallment: 4, DueDate: due,
			},
			expectedCode: domainerror.ErrCodeInvalidInstallments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDebtRepository(ctrl)
			if tt.expectCreate {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			out, err := debt.NewCreateDebtUseCase(repo, newClock(ctrl)).Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				var debtErr *domainerror.DebtError
				require.True(t, errors.As(err, &debtErr), "expected DebtError, got %v", err)
				assert.Equal(t, tt.expectedCode, debtErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, out.Debt.Installments)
			assert.Equal(t, 1, out.Debt.CurrentInstallment)
			assert.True(t, out.Remaining.Equal(d(500)))
			assert.Equal(t, entity.DebtStatusPending, out.Status)
		})
	}
}

func TestDeleteDebtUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	stored := entity.NewDebt(owner, "Notebook", d(3000), d(0), 10, 1, now)

	t.Run("owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDebtRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), stored.ID).Return(nil)

		err := debt.NewDeleteDebtUseCase(repo).Execute(context.Background(), debt.DeleteDebtInput{DebtID: stored.ID, UserID: owner})
		assert.NoError(t, err)
	})

	t.Run("other user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDebtRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		err := debt.NewDeleteDebtUseCase(repo).Execute(context.Background(), debt.DeleteDebtInput{DebtID: stored.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnauthorizedDebtAccess) {
			t.Errorf("expected ErrUnauthorizedDebtAccess, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDebtRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(nil, domainerror.ErrDebtNotFound)

		err := debt.NewDeleteDebtUseCase(repo).Execute(context.Background(), debt.DeleteDebtInput{DebtID: stored.ID, UserID: owner})
		if !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected ErrDebtNotFound, got %v", err)
		}
	})
}
