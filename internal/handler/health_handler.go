package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hungerguard/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	recorder port.PlanRecorder
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(recorder port.PlanRecorder) *HealthHandler {
	return &HealthHandler{recorder: recorder}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.recorder.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "plan store not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
