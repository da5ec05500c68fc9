package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pmartell/sonyadcp/pkg/projector"
	"github.com/pmartell/sonyadcp/pkg/projector/schema"
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

const maxDiscoveryWindowSeconds = 120

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := "healthy"
	registryStatus := "connected"
	count := 0

	if err := s.registry.PingContext(ctx); err != nil {
		status = "unhealthy"
		registryStatus = "disconnected"
	} else if projectors, err := s.registry.Projectors().List(ctx); err == nil {
		count = len(projectors)
	}

	out := GetHealthOutput{
		Status:     status,
		Registry:   registryStatus,
		Projectors: count,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDiscoverProjectors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	listener := *s.listener
	if w, ok := args["window_seconds"].(float64); ok && w > 0 {
		if w > maxDiscoveryWindowSeconds {
			return mcp.NewToolResultError(fmt.Sprintf("window cannot exceed %d seconds", maxDiscoveryWindowSeconds)), nil
		}
		listener.Window = time.Duration(w) * time.Second
	}

	devices, err := listener.Discover(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("discovery failed: %s", err)), nil
	}
	if devices == nil {
		devices = []sdap.Device{}
	}

	persist, _ := args["persist"].(bool)
	if persist {
		store := s.registry.Projectors()
		for _, dev := range devices {
			if err := store.Upsert(ctx, registry.FromDiscovery(dev)); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to register projector %d: %s", dev.Serial, err)), nil
			}
		}
	}

	out := DiscoverProjectorsOutput{
		Devices:   devices,
		Count:     len(devices),
		Persisted: persist,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListProjectors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectors, err := s.registry.Projectors().List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list projectors: %s", err)), nil
	}

	infos := make([]ProjectorInfo, 0, len(projectors))
	for _, p := range projectors {
		infos = append(infos, ProjectorToInfo(p))
	}

	out := ListProjectorsOutput{
		Projectors: infos,
		Count:      len(infos),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetProjector(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	out := GetProjectorOutput{Projector: ProjectorToInfo(p)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRenameProjector(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newName, err := requiredString(request, "new_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.registry.Projectors().Rename(ctx, id, newName); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to rename projector: %s", err)), nil
	}

	out := RenameProjectorOutput{
		Success: true,
		Message: fmt.Sprintf("Projector %q renamed to %q", id, newName),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRemoveProjector(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.registry.Projectors().Delete(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove projector: %s", err)), nil
	}

	out := RemoveProjectorOutput{
		Success: true,
		Message: fmt.Sprintf("Projector %q removed from registry", id),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	state, err := projector.NewController(p.Session()).Snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read state: %s", err)), nil
	}

	return mcp.NewToolResultText(formatJSON(stateOutput(p.ID, state))), nil
}

func (s *Server) handleSetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	stateMap, ok := request.GetArguments()["state"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError(`parameter "state" must be an object`), nil
	}
	if err := schema.ValidateState(stateMap); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	state, err := projector.NewController(p.Session()).Apply(ctx, stateMap)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set state: %s", err)), nil
	}

	return mcp.NewToolResultText(formatJSON(stateOutput(p.ID, state))), nil
}

func (s *Server) handlePowerOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.applyState(ctx, request, map[string]any{"power": "on"})
}

func (s *Server) handlePowerOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.applyState(ctx, request, map[string]any{"power": "off"})
}

func (s *Server) handleSelectInput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := requiredString(request, "input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.applyState(ctx, request, map[string]any{"input": input})
}

func (s *Server) handlePressKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := requiredString(request, "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	if err := projector.NewController(p.Session()).PressKey(ctx, key); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to press key: %s", err)), nil
	}

	out := PressKeyOutput{Success: true, Key: key}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSendCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command, err := requiredString(request, "command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := request.GetArguments()
	value, _ := args["value"].(string)
	parameter, _ := args["parameter"].(string)

	if err := schema.ValidateCommand(map[string]any{
		"command":   command,
		"value":     value,
		"parameter": parameter,
	}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	resp, err := projector.NewController(p.Session()).Send(ctx, command, value, parameter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("command failed: %s", err)), nil
	}

	out := SendCommandOutput{
		Command: command,
		Ack:     resp.Ack(),
		Value:   resp.Value,
		Range:   resp.Range,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetSensors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}
	ctrl := projector.NewController(p.Session())

	errTokens, err := ctrl.ActiveErrors(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read errors: %s", err)), nil
	}
	warnTokens, err := ctrl.ActiveWarnings(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read warnings: %s", err)), nil
	}

	out := GetSensorsOutput{
		ProjectorID: p.ID,
		Errors:      errTokens,
		Warnings:    warnTokens,
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}

	// Counters are model-dependent; omit rather than fail.
	if hours, err := ctrl.LightSourceHours(ctx); err == nil {
		out.LightSourceHours = &hours
	}
	if temp, err := ctrl.Temperature(ctx); err == nil {
		out.Temperature = temp
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func (s *Server) projectorByID(ctx context.Context, request mcp.CallToolRequest) (*registry.Projector, *mcp.CallToolResult) {
	id, err := requiredString(request, "id")
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	p, err := s.registry.Projectors().Get(ctx, id)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("projector not found: %s", err))
	}
	return p, nil
}

func (s *Server) applyState(ctx context.Context, request mcp.CallToolRequest, payload map[string]any) (*mcp.CallToolResult, error) {
	p, errResult := s.projectorByID(ctx, request)
	if errResult != nil {
		return errResult, nil
	}

	state, err := projector.NewController(p.Session()).Apply(ctx, payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to apply state: %s", err)), nil
	}

	return mcp.NewToolResultText(formatJSON(stateOutput(p.ID, state))), nil
}

func stateOutput(id string, state projector.State) StateOutput {
	return StateOutput{
		ProjectorID: id,
		Power:       state.Power,
		Input:       state.Input,
		Muted:       state.Muted,
	}
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
