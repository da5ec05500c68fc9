package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pmartell/sonyadcp/pkg/adcp"
	"github.com/pmartell/sonyadcp/pkg/api/types"
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

// ProjectorsHandler handles projector CRUD endpoints
type ProjectorsHandler struct {
	store registry.ProjectorStore
}

// NewProjectorsHandler creates a new projectors handler
func NewProjectorsHandler(store registry.ProjectorStore) *ProjectorsHandler {
	return &ProjectorsHandler{store: store}
}

func projectorInfo(p *registry.Projector) types.ProjectorInfo {
	return types.ProjectorInfo{
		ID:             p.ID,
		Name:           p.Name,
		Model:          p.Model,
		Address:        p.Address,
		ADCPPort:       p.ADCPPort,
		TimeoutSeconds: p.TimeoutSeconds,
		LastSeen:       p.LastSeen,
	}
}

// ListProjectors handles GET /projectors
// @Summary      List all projectors
// @Description  Returns every projector in the registry
// @Tags         projectors
// @Produce      json
// @Success      200  {object}  types.ListProjectorsResponse
// @Failure      500  {object}  types.ErrorResponse  "Registry error"
// @Router       /projectors [get]
func (h *ProjectorsHandler) ListProjectors(c *gin.Context) {
	projectors, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "registry_error",
			Message: err.Error(),
		})
		return
	}

	result := make([]types.ProjectorInfo, 0, len(projectors))
	for _, p := range projectors {
		result = append(result, projectorInfo(p))
	}

	c.JSON(http.StatusOK, types.ListProjectorsResponse{
		Projectors: result,
		Count:      len(result),
	})
}

// GetProjector handles GET /projectors/:id
// @Summary      Get projector details
// @Description  Returns one projector by serial number
// @Tags         projectors
// @Produce      json
// @Param        id   path      string  true  "Projector serial number"
// @Success      200  {object}  types.ProjectorResponse
// @Failure      404  {object}  types.ErrorResponse  "Projector not found"
// @Failure      500  {object}  types.ErrorResponse  "Registry error"
// @Router       /projectors/{id} [get]
func (h *ProjectorsHandler) GetProjector(c *gin.Context) {
	p, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeProjectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ProjectorResponse{Projector: projectorInfo(p)})
}

// AddProjector handles POST /projectors
// @Summary      Register a projector manually
// @Description  Adds a projector by address, for networks where UDP broadcast discovery is blocked
// @Tags         projectors
// @Accept       json
// @Produce      json
// @Param        request  body      types.AddProjectorRequest  true  "Projector connection settings"
// @Success      201      {object}  types.ProjectorResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      500      {object}  types.ErrorResponse  "Registry error"
// @Router       /projectors [post]
func (h *ProjectorsHandler) AddProjector(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.AddProjectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "id and address are required",
		})
		return
	}

	p := &registry.Projector{
		ID:             req.ID,
		Name:           req.Name,
		Address:        req.Address,
		ADCPPort:       req.ADCPPort,
		SDAPPort:       sdap.DefaultPort,
		Password:       req.Password,
		TimeoutSeconds: req.TimeoutSeconds,
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if p.ADCPPort == 0 {
		p.ADCPPort = adcp.DefaultPort
	}
	if p.TimeoutSeconds == 0 {
		p.TimeoutSeconds = int(adcp.DefaultTimeout.Seconds())
	}

	if err := h.store.Upsert(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "registry_error",
			Message: err.Error(),
		})
		return
	}

	stored, err := h.store.Get(ctx, p.ID)
	if err != nil {
		writeProjectorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.ProjectorResponse{Projector: projectorInfo(stored)})
}

// UpdateProjector handles PATCH /projectors/:id
// @Summary      Update projector settings
// @Description  Changes the name, address, port, password, or timeout of a registered projector
// @Tags         projectors
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Projector serial number"
// @Param        request  body      types.UpdateProjectorRequest   true  "Fields to change"
// @Success      200      {object}  types.ProjectorResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Projector not found"
// @Failure      500      {object}  types.ErrorResponse  "Registry error"
// @Router       /projectors/{id} [patch]
func (h *ProjectorsHandler) UpdateProjector(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req types.UpdateProjectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	p, err := h.store.Get(ctx, id)
	if err != nil {
		writeProjectorError(c, err)
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.ADCPPort != nil {
		p.ADCPPort = *req.ADCPPort
	}
	if req.Password != nil {
		p.Password = *req.Password
	}
	if req.TimeoutSeconds != nil {
		p.TimeoutSeconds = *req.TimeoutSeconds
	}

	if err := h.store.Update(ctx, p); err != nil {
		writeProjectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ProjectorResponse{Projector: projectorInfo(p)})
}

// RemoveProjector handles DELETE /projectors/:id
// @Summary      Remove a projector
// @Description  Deletes a projector from the registry
// @Tags         projectors
// @Produce      json
// @Param        id   path  string  true  "Projector serial number"
// @Success      204  "Projector removed"
// @Failure      404  {object}  types.ErrorResponse  "Projector not found"
// @Failure      500  {object}  types.ErrorResponse  "Registry error"
// @Router       /projectors/{id} [delete]
func (h *ProjectorsHandler) RemoveProjector(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeProjectorError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
