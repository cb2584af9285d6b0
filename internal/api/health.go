package api

import (
	"net/http"
	"time"

	"farmer-assist/backend/pkg/health"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and component status
type HealthHandler struct {
	checker *health.Checker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles GET /health and GET /api/v1/health
func (h *HealthHandler) Health(c *gin.Context) {
	components := h.checker.GetStatus()

	status := http.StatusOK
	overall := "healthy"
	if !h.checker.IsSystemHealthy() {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"service":    "farmer-assist",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"components": components,
	})
}
