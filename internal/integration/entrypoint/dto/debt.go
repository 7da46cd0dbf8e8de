package dto

import (
	"github.com/finance-tracker/planner/internal/application/usecase/debt"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Name               string  `json:"name" binding:"required,min=1,max=100"`
	TotalAmount        float64 `json:"total_amount" binding:"required,gt=0"`
	PaidAmount         float64 `json:"paid_amount" binding:"gte=0"`
	Installments       int     `json:"installments" binding:"gte=0"`
	CurrentInstallment int     `json:"current_installment" binding:"gte=0"`
	DueDate            string  `json:"due_date" binding:"required"`
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	TotalAmount        string `json:"total_amount"`
	PaidAmount         string `json:"paid_amount"`
	Remaining          string `json:"remaining"`
	InstallmentAmount  string `json:"installment_amount"`
	Installments       int    `json:"installments"`
	CurrentInstallment int    `json:"current_installment"`
	DueDate            string `json:"due_date"`
	Status             string `json:"status"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts            []DebtResponse `json:"debts"`
	TotalOutstanding string         `json:"total_outstanding"`
	OverdueCount     int            `json:"overdue_count"`
}

// ToDebtResponse converts a DebtOutput to a DebtResponse DTO.
func ToDebtResponse(output *debt.DebtOutput) DebtResponse {
	d := output.Debt
	return DebtResponse{
		ID:                 d.ID.String(),
		Name:               d.Name,
		TotalAmount:        money(d.TotalAmount),
		PaidAmount:         money(d.PaidAmount),
		Remaining:          money(output.Remaining),
		InstallmentAmount:  money(output.InstallmentAmount),
		Installments:       d.Installments,
		CurrentInstallment: d.CurrentInstallment,
		DueDate:            dateString(d.DueDate),
		Status:             string(output.Status),
	}
}

// ToDebtListResponse converts a ListDebtsOutput to DebtListResponse.
func ToDebtListResponse(output *debt.ListDebtsOutput) DebtListResponse {
	debts := make([]DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = ToDebtResponse(d)
	}
	return DebtListResponse{
		Debts:            debts,
		TotalOutstanding: money(output.TotalOutstanding),
		OverdueCount:     output.OverdueCount,
	}
}
