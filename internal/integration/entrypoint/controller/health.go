// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/adapter"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one backing service. Check returns false when the
// service cannot be reached.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) bool
}

// HealthController reports the API status and the state of its backing services.
type HealthController struct {
	clock  adapter.Clock
	checks []HealthCheck
}

// HealthResponse represents the health check response. Status is "ok" when
// every dependency is connected and "degraded" otherwise.
type HealthResponse struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(clock adapter.Clock, checks ...HealthCheck) *HealthController {
	return &HealthController{
		clock:  clock,
		checks: checks,
	}
}

// Check handles GET /health requests. It always answers 200 so that a
// degraded cache does not take the API out of rotation.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:       "ok",
		Database:     "disconnected",
		Dependencies: make(map[string]string, len(h.checks)),
		Timestamp:    h.clock.Now().UTC().Format(time.RFC3339),
	}

	for _, check := range h.checks {
		state := "disconnected"
		if check.Check != nil && check.Check(ctx) {
			state = "connected"
		} else {
			response.Status = "degraded"
		}
		response.Dependencies[check.Name] = state
		if check.Name == "database" {
			response.Database = state
		}
	}

	c.JSON(http.StatusOK, response)
}
