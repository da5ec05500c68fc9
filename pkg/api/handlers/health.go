package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pmartell/sonyadcp/pkg/api/types"
	"github.com/pmartell/sonyadcp/pkg/registry"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	registry *registry.Registry
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(reg *registry.Registry) *HealthHandler {
	return &HealthHandler{registry: reg}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the API and the projector registry
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Service is degraded"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	status := "healthy"
	registryStatus := "connected"
	httpStatus := http.StatusOK

	count := 0
	if err := h.registry.PingContext(ctx); err != nil {
		status = "degraded"
		registryStatus = "disconnected"
		httpStatus = http.StatusServiceUnavailable
	} else if projectors, err := h.registry.Projectors().List(ctx); err == nil {
		count = len(projectors)
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:     status,
		Registry:   registryStatus,
		Projectors: count,
		Timestamp:  time.Now(),
	})
}
