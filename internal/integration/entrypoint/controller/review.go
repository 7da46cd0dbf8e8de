package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/review"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// ReviewController handles monthly review endpoints.
type ReviewController struct {
	getUseCase   *review.GetMonthlyReviewUseCase
	emailUseCase *review.EmailMonthlyReviewUseCase
}

// NewReviewController creates a new review controller instance.
func NewReviewController(getUseCase *review.GetMonthlyReviewUseCase, emailUseCase *review.EmailMonthlyReviewUseCase) *ReviewController {
	return &ReviewController{
		getUseCase:   getUseCase,
		emailUseCase: emailUseCase,
	}
}

// GetMonthly handles GET /reviews/monthly requests.
func (c *ReviewController) GetMonthly(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	year, month, ok := yearMonthQuery(ctx, string(domainerror.ErrCodeInvalidReviewPeriod))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), review.GetMonthlyReviewInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleReviewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReviewResponse(output))
}

// EmailMonthly handles POST /reviews/monthly/email requests.
func (c *ReviewController) EmailMonthly(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.EmailReviewRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
				Code:  string(domainerror.ErrCodeInvalidReviewPeriod),
			})
			return
		}
	}

	email := req.Email
	if email == "" {
		email, _ = middleware.GetUserEmailFromContext(ctx)
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), review.EmailMonthlyReviewInput{
		UserID: userID,
		Email:  email,
		Name:   req.Name,
		Year:   req.Year,
		Month:  time.Month(req.Month),
	})
	if err != nil {
		c.handleReviewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.EmailReviewResponse{
		Message:  "Monthly review sent",
		ResendID: output.ResendID,
		Review:   dto.ToMonthlyReviewResponse(output.Review),
	})
}

// handleReviewError handles review errors and returns appropriate HTTP responses.
func (c *ReviewController) handleReviewError(ctx *gin.Context, err error) {
	var reviewErr *domainerror.ReviewError
	if errors.As(err, &reviewErr) {
		ctx.JSON(c.getStatusCodeForReviewError(reviewErr.Code), dto.ErrorResponse{
			Error: reviewErr.Message,
			Code:  string(reviewErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForReviewError maps review error codes to HTTP status codes.
func (c *ReviewController) getStatusCodeForReviewError(code domainerror.ReviewErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReviewPeriod,
		domainerror.ErrCodeMissingRecipient:
		return http.StatusBadRequest
	case domainerror.ErrCodeReviewEmailFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
