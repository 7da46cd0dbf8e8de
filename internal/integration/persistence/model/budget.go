// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_name"`
	Name       string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_user_name"`
	Limit      decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null;default:0"`
	Categories []string        `gorm:"type:text;serializer:json"`
	IsDefault  bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Limit:      m.Limit,
		Categories: append([]string(nil), m.Categories...),
		IsDefault:  m.IsDefault,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	categories := budget.Categories
	if categories == nil {
		categories = []string{}
	}

	return &BudgetModel{
		ID:         budget.ID,
		UserID:     budget.UserID,
		Name:       budget.Name,
		Limit:      budget.Limit,
		Categories: categories,
		IsDefault:  budget.IsDefault,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
