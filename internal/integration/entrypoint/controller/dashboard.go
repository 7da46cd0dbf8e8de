package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase       *dashboard.GetSummaryUseCase
	getMonthlyTrendsUseCase *dashboard.GetMonthlyTrendsUseCase
	getDataRangeUseCase     *dashboard.GetDataRangeUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSummaryUseCase *dashboard.GetSummaryUseCase,
	getMonthlyTrendsUseCase *dashboard.GetMonthlyTrendsUseCase,
	getDataRangeUseCase *dashboard.GetDataRangeUseCase,
) *DashboardController {
	return &DashboardController{
		getSummaryUseCase:       getSummaryUseCase,
		getMonthlyTrendsUseCase: getMonthlyTrendsUseCase,
		getDataRangeUseCase:     getDataRangeUseCase,
	}
}

// periodQuery parses start_date and end_date. Presence and ordering are
// validated by the use cases.
func periodQuery(ctx *gin.Context) (start, end time.Time, ok bool) {
	code := string(domainerror.ErrCodeInvalidDateFormat)
	if start, ok = parseOptionalDate(ctx, "start_date", code); !ok {
		return
	}
	end, ok = parseOptionalDate(ctx, "end_date", code)
	return
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	start, end, ok := periodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetMonthly handles GET /dashboard/monthly requests.
func (c *DashboardController) GetMonthly(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	start, end, ok := periodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getMonthlyTrendsUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyTrendsInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendsResponse(output))
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.getDataRangeUseCase.Execute(ctx.Request.Context(), dashboard.GetDataRangeInput{UserID: userID})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
