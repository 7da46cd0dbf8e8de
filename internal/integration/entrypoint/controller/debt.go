package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/planner/internal/application/usecase/debt"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	createUseCase *debt.CreateDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{UserID: userID})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	dueDate, err := time.Parse(dto.DateLayout, req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due_date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID:             userID,
		Name:               req.Name,
		TotalAmount:        decimal.NewFromFloat(req.TotalAmount),
		PaidAmount:         decimal.NewFromFloat(req.PaidAmount),
		Installments:       req.Installments,
		CurrentInstallment: req.CurrentInstallment,
		DueDate:            dueDate,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	debtID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeDebtNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{DebtID: debtID, UserID: userID}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(c.getStatusCodeForDebtError(debtErr.Code), dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedDebtAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeInvalidInstallments,
		domainerror.ErrCodeMissingDebtFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
