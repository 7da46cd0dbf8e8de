package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/subscription"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	getUseCase *subscription.GetSubscriptionUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(getUseCase *subscription.GetSubscriptionUseCase) *SubscriptionController {
	return &SubscriptionController{getUseCase: getUseCase}
}

// Get handles GET /subscription requests.
func (c *SubscriptionController) Get(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), subscription.GetSubscriptionInput{UserID: userID})
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output))
}
