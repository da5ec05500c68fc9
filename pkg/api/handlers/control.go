package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pmartell/sonyadcp/pkg/api/types"
	"github.com/pmartell/sonyadcp/pkg/projector"
	"github.com/pmartell/sonyadcp/pkg/projector/schema"
	"github.com/pmartell/sonyadcp/pkg/registry"
)

// ControlHandler handles per-projector control endpoints. Each request opens
// its own ADCP session, so handlers are stateless.
type ControlHandler struct {
	store registry.ProjectorStore
}

// NewControlHandler creates a new control handler
func NewControlHandler(store registry.ProjectorStore) *ControlHandler {
	return &ControlHandler{store: store}
}

func (h *ControlHandler) controller(c *gin.Context) (*projector.Controller, *registry.Projector, bool) {
	p, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeProjectorError(c, err)
		return nil, nil, false
	}
	return projector.NewController(p.Session()), p, true
}

// GetState handles GET /projectors/:id/state
// @Summary      Get projector state
// @Description  Returns the current power, input and mute state
// @Tags         control
// @Produce      json
// @Param        id   path      string  true  "Projector serial number"
// @Success      200  {object}  types.StateResponse
// @Failure      404  {object}  types.ErrorResponse  "Projector not found"
// @Failure      502  {object}  types.ErrorResponse  "Projector unreachable"
// @Failure      504  {object}  types.ErrorResponse  "Projector timed out"
// @Router       /projectors/{id}/state [get]
func (h *ControlHandler) GetState(c *gin.Context) {
	ctrl, p, ok := h.controller(c)
	if !ok {
		return
	}

	state, err := ctrl.Snapshot(c.Request.Context())
	if err != nil {
		writeProjectorError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Projector: p.ID,
		Power:     state.Power,
		Input:     state.Input,
		Muted:     state.Muted,
		Timestamp: time.Now(),
	})
}

// SetState handles POST /projectors/:id/state
// @Summary      Set projector state
// @Description  Applies a state payload (power, input, muted), power first, then returns the resulting state
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Projector serial number"
// @Param        request  body      object  true  "State to apply"
// @Success      200      {object}  types.StateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid state payload"
// @Failure      404      {object}  types.ErrorResponse  "Projector not found"
// @Failure      502      {object}  types.ErrorResponse  "Projector unreachable"
// @Failure      504      {object}  types.ErrorResponse  "Projector timed out"
// @Router       /projectors/{id}/state [post]
func (h *ControlHandler) SetState(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := schema.ValidateState(payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctrl, p, ok := h.controller(c)
	if !ok {
		return
	}

	state, err := ctrl.Apply(c.Request.Context(), payload)
	if err != nil {
		writeProjectorError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Projector: p.ID,
		Power:     state.Power,
		Input:     state.Input,
		Muted:     state.Muted,
		Timestamp: time.Now(),
	})
}

// SendCommand handles POST /projectors/:id/command
// @Summary      Send a raw command
// @Description  Sends one ADCP command with an optional value and parameter and returns the classified reply
// @Tags         control
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Projector serial number"
// @Param        request  body      types.CommandRequest  true  "Command to send"
// @Success      200      {object}  types.CommandResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid command payload"
// @Failure      404      {object}  types.ErrorResponse  "Projector not found"
// @Failure      422      {object}  types.ErrorResponse  "Device rejected the command"
// @Failure      502      {object}  types.ErrorResponse  "Projector unreachable"
// @Failure      504      {object}  types.ErrorResponse  "Projector timed out"
// @Router       /projectors/{id}/command [post]
func (h *ControlHandler) SendCommand(c *gin.Context) {
	var req types.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "command is required",
		})
		return
	}

	if err := schema.ValidateCommand(map[string]any{
		"command":   req.Command,
		"value":     req.Value,
		"parameter": req.Parameter,
	}); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ctrl, _, ok := h.controller(c)
	if !ok {
		return
	}

	resp, err := ctrl.Send(c.Request.Context(), req.Command, req.Value, req.Parameter)
	if err != nil {
		writeProjectorError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.CommandResponse{
		Command: req.Command,
		Ack:     resp.Ack(),
		Value:   resp.Value,
		Range:   resp.Range,
	})
}

// PressKey handles POST /projectors/:id/keys/:key
// @Summary      Press a remote-control key
// @Description  Emulates a keypress such as menu, up, enter or lens_shift_up
// @Tags         control
// @Produce      json
// @Param        id   path      string  true  "Projector serial number"
// @Param        key  path      string  true  "Key name"
// @Success      200  {object}  types.KeyResponse
// @Failure      404  {object}  types.ErrorResponse  "Projector or key not found"
// @Failure      502  {object}  types.ErrorResponse  "Projector unreachable"
// @Failure      504  {object}  types.ErrorResponse  "Projector timed out"
// @Router       /projectors/{id}/keys/{key} [post]
func (h *ControlHandler) PressKey(c *gin.Context) {
	key := c.Param("key")

	ctrl, _, ok := h.controller(c)
	if !ok {
		return
	}

	if err := ctrl.PressKey(c.Request.Context(), key); err != nil {
		if errors.Is(err, projector.ErrUnknownKey) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "unknown_key",
				Message: err.Error(),
			})
			return
		}
		writeProjectorError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.KeyResponse{Key: key, Status: "pressed"})
}

// GetSensors handles GET /projectors/:id/sensors
// @Summary      Read projector sensors
// @Description  Returns light source hours, temperature and active error/warning tokens
// @Tags         control
// @Produce      json
// @Param        id   path      string  true  "Projector serial number"
// @Success      200  {object}  types.SensorsResponse
// @Failure      404  {object}  types.ErrorResponse  "Projector not found"
// @Failure      502  {object}  types.ErrorResponse  "Projector unreachable"
// @Failure      504  {object}  types.ErrorResponse  "Projector timed out"
// @Router       /projectors/{id}/sensors [get]
func (h *ControlHandler) GetSensors(c *gin.Context) {
	ctx := c.Request.Context()

	ctrl, p, ok := h.controller(c)
	if !ok {
		return
	}

	errs, err := ctrl.ActiveErrors(ctx)
	if err != nil {
		writeProjectorError(c, err)
		return
	}
	warnings, err := ctrl.ActiveWarnings(ctx)
	if err != nil {
		writeProjectorError(c, err)
		return
	}

	resp := types.SensorsResponse{
		Projector: p.ID,
		Errors:    errs,
		Warnings:  warnings,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}

	// Not every model exposes these counters; leave them out rather than fail.
	if hours, err := ctrl.LightSourceHours(ctx); err == nil {
		resp.LightSourceHours = &hours
	}
	if temp, err := ctrl.Temperature(ctx); err == nil {
		resp.Temperature = temp
	}

	c.JSON(http.StatusOK, resp)
}
