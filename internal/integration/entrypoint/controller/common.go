// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

// authenticatedUser returns the user ID set by the auth middleware, or
// responds 401 and returns false.
func authenticatedUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a UUID path parameter, responding 400 on failure.
func parseIDParam(ctx *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalDate parses a YYYY-MM-DD query parameter. A missing value
// yields the zero time; a malformed one responds 400.
func parseOptionalDate(ctx *gin.Context, name, code string) (time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
			Code:  code,
		})
		return time.Time{}, false
	}
	return date, true
}

// respondInternalError logs an unexpected failure and responds 500.
func respondInternalError(ctx *gin.Context, err error) {
	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
