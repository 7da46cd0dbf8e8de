package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/insight"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(generateUseCase *insight.GenerateInsightsUseCase) *InsightController {
	return &InsightController{generateUseCase: generateUseCase}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{UserID: userID})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightResponse(output))
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var processingErr *insight.ProcessingError
	if errors.As(err, &processingErr) {
		status := http.StatusBadGateway
		switch processingErr.Code {
		case insight.ErrCodeAIRateLimited:
			status = http.StatusTooManyRequests
		case insight.ErrCodeAITimeout:
			status = http.StatusGatewayTimeout
		}
		ctx.JSON(status, gin.H{"error": dto.ToProcessingErrorResponse(processingErr)})
		return
	}

	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		status := http.StatusInternalServerError
		switch insightErr.Code {
		case domainerror.ErrCodeInsightServiceUnavailable:
			status = http.StatusServiceUnavailable
		case domainerror.ErrCodePremiumRequired:
			status = http.StatusPaymentRequired
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}
