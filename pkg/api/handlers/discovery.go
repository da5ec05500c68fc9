package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pmartell/sonyadcp/pkg/api/types"
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

const maxDiscoveryWindowSeconds = 120

// DiscoveryHandler handles network discovery endpoints
type DiscoveryHandler struct {
	listener *sdap.Listener
	store    registry.ProjectorStore
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(listener *sdap.Listener, store registry.ProjectorStore) *DiscoveryHandler {
	return &DiscoveryHandler{listener: listener, store: store}
}

// Discover handles POST /discovery
// @Summary      Discover projectors
// @Description  Listens for UDP announcement broadcasts for one window and returns the devices heard. With persist, found devices are added to the registry.
// @Tags         discovery
// @Accept       json
// @Produce      json
// @Param        request  body      types.DiscoverRequest  false  "Window length and persistence (default one announcement interval, max 120 seconds)"
// @Success      200      {object}  types.DiscoverResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid window"
// @Failure      500      {object}  types.ErrorResponse  "Listener or registry error"
// @Router       /discovery [post]
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body means one full announcement interval, no persist.
		req = types.DiscoverRequest{}
	}
	if req.WindowSeconds > maxDiscoveryWindowSeconds {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_window",
			Message: "Window cannot exceed 120 seconds",
		})
		return
	}

	listener := *h.listener
	if req.WindowSeconds > 0 {
		listener.Window = time.Duration(req.WindowSeconds) * time.Second
	}

	devices, err := listener.Discover(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "listener_error",
			Message: err.Error(),
		})
		return
	}

	persisted := false
	if req.Persist {
		for _, dev := range devices {
			if err := h.store.Upsert(ctx, registry.FromDiscovery(dev)); err != nil {
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Error:   "registry_error",
					Message: err.Error(),
				})
				return
			}
			log.Info().Str("model", dev.Model).Uint32("serial", dev.Serial).
				Str("address", dev.Address).Msg("Registered discovered projector")
		}
		persisted = true
	}

	if devices == nil {
		devices = []sdap.Device{}
	}
	c.JSON(http.StatusOK, types.DiscoverResponse{
		Devices:       devices,
		Count:         len(devices),
		WindowSeconds: int(listener.Window / time.Second),
		Persisted:     persisted,
	})
}
