package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/services"
)

// HealthController reports service health
type HealthController struct {
	healthService services.HealthService
}

// NewHealthController creates a new HealthController
func NewHealthController(healthService services.HealthService) *HealthController {
	return &HealthController{healthService: healthService}
}

// Health reports dependency reachability
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "All dependencies reachable"
// @Failure 503 {object} dto.HealthResponse "At least one dependency is unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	resp := c.healthService.Check(ctx.Request.Context())
	status := http.StatusOK
	if resp.Status != services.HealthStatusOK {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}
