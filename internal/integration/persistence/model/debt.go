// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(100);not null"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Installments       int             `gorm:"not null;default:1"`
	CurrentInstallment int             `gorm:"not null;default:1"`
	DueDate            time.Time       `gorm:"type:date;not null"`
	Status             string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		TotalAmount:        m.TotalAmount,
		PaidAmount:         m.PaidAmount,
		Installments:       m.Installments,
		CurrentInstallment: m.CurrentInstallment,
		DueDate:            entity.DateOnly(m.DueDate),
		Status:             entity.DebtStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:                 debt.ID,
		UserID:             debt.UserID,
		Name:               debt.Name,
		TotalAmount:        debt.TotalAmount,
		PaidAmount:         debt.PaidAmount,
		Installments:       debt.Installments,
		CurrentInstallment: debt.CurrentInstallment,
		DueDate:            debt.DueDate,
		Status:             string(debt.Status),
		CreatedAt:          debt.CreatedAt,
		UpdatedAt:          debt.UpdatedAt,
	}
}
