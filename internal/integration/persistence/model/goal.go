// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(100);not null"`
	DueDate             time.Time      `gorm:"type:date;not null"`
	IsFinancialFreedom  bool           `gorm:"not null;default:false"`
	TargetAmount        float64        `gorm:"type:decimal(15,2);not null;default:0"`
	CurrentAmount       float64        `gorm:"type:decimal(15,2);not null;default:0"`
	TargetMonthlyIncome *float64       `gorm:"type:decimal(15,2)"`
	CurrentInvestments  *float64       `gorm:"type:decimal(15,2)"`
	AnnualReturnRate    *float64       `gorm:"type:decimal(7,4)"`
	MonthlyContribution *float64       `gorm:"type:decimal(15,2)"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
	DeletedAt           gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		DueDate:             entity.DateOnly(m.DueDate),
		IsFinancialFreedom:  m.IsFinancialFreedom,
		TargetAmount:        m.TargetAmount,
		CurrentAmount:       m.CurrentAmount,
		TargetMonthlyIncome: m.TargetMonthlyIncome,
		CurrentInvestments:  m.CurrentInvestments,
		AnnualReturnRate:    m.AnnualReturnRate,
		MonthlyContribution: m.MonthlyContribution,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                  goal.ID,
		UserID:              goal.UserID,
		Name:                goal.Name,
		DueDate:             goal.DueDate,
		IsFinancialFreedom:  goal.IsFinancialFreedom,
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		TargetMonthlyIncome: goal.TargetMonthlyIncome,
		CurrentInvestments:  goal.CurrentInvestments,
		AnnualReturnRate:    goal.AnnualReturnRate,
		MonthlyContribution: goal.MonthlyContribution,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}
