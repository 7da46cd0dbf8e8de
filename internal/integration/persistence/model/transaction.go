// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_transactions_user_date"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(50);not null;default:'';index"`
	IsFixed     bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// The amount sign is re-derived from the type so rows written by other
// clients still satisfy the entity invariant.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	txType := entity.TransactionType(m.Type)

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        entity.DateOnly(m.Date),
		Description: m.Description,
		Amount:      entity.CanonicalAmount(m.Amount, txType),
		Type:        txType,
		Category:    m.Category,
		IsFixed:     m.IsFixed,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		IsFixed:     transaction.IsFixed,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.CreatedAt,
	}
}
