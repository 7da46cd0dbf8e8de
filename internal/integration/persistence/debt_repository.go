// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	result := r.db.WithContext(ctx).Create(model.DebtFromEntity(debt))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUserID retrieves all debts of a user, ordered by due date.
func (r *debtRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts, nil
}

// Delete removes a debt from the database (soft delete).
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
