package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-tracker/planner/internal/application/adapter/mocks"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/controller"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthController_Check(t *testing.T) {
	up := func(context.Context) bool { return true }
	down := func(context.Context) bool { return false }
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		checks       []controller.HealthCheck
		wantStatus   string
		wantDatabase string
		wantDeps     map[string]string
	}{
		{
			name: "all connected",
			checks: []controller.HealthCheck{
				{Name: "database", Check: up},
				{Name: "redis", Check: up},
			},
			wantStatus:   "ok",
			wantDatabase: "connected",
			wantDeps:     map[string]string{"database": "connected", "redis": "connected"},
		},
		{
			name: "cache down degrades",
			checks: []controller.HealthCheck{
				{Name: "database", Check: up},
				{Name: "redis", Check: down},
			},
			wantStatus:   "degraded",
			wantDatabase: "connected",
			wantDeps:     map[string]string{"database": "connected", "redis": "disconnected"},
		},
		{
			name:         "missing probe counts as down",
			checks:       []controller.HealthCheck{{Name: "database"}},
			wantStatus:   "degraded",
			wantDatabase: "disconnected",
			wantDeps:     map[string]string{"database": "disconnected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now)

			router := gin.New()
			router.GET("/health", controller.NewHealthController(clock, tt.checks...).Check)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var body controller.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantDatabase, body.Database)
			assert.Equal(t, tt.wantDeps, body.Dependencies)
			assert.Equal(t, "2024-03-20T12:00:00Z", body.Timestamp)
		})
	}
}
