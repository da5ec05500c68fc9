package mcp

import (
	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status     string `json:"status" jsonschema:"description=Overall health status (healthy or unhealthy)"`
	Registry   string `json:"registry" jsonschema:"description=Registry database connection status"`
	Projectors int    `json:"projectors" jsonschema:"description=Number of registered projectors"`
	Timestamp  string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- Discovery Tool ---

// DiscoverProjectorsOutput is the output for the discover_projectors tool
type DiscoverProjectorsOutput struct {
	Devices   []sdap.Device `json:"devices" jsonschema:"description=Projectors heard during the window"`
	Count     int           `json:"count" jsonschema:"description=Number of projectors heard"`
	Persisted bool          `json:"persisted" jsonschema:"description=Whether devices were added to the registry"`
}

// --- Registry Tools ---

// ProjectorInfo represents a registered projector in tool outputs
type ProjectorInfo struct {
	ID       string `json:"id" jsonschema:"description=Serial number"`
	Name     string `json:"name" jsonschema:"description=Display name"`
	Model    string `json:"model,omitempty" jsonschema:"description=Model name"`
	Address  string `json:"address" jsonschema:"description=IP address"`
	ADCPPort int    `json:"adcp_port" jsonschema:"description=Control protocol TCP port"`
	LastSeen string `json:"last_seen,omitempty" jsonschema:"description=When the projector last announced itself"`
}

// ListProjectorsOutput is the output for the list_projectors tool
type ListProjectorsOutput struct {
	Projectors []ProjectorInfo `json:"projectors" jsonschema:"description=Registered projectors"`
	Count      int             `json:"count" jsonschema:"description=Total number of projectors"`
}

// GetProjectorOutput is the output for the get_projector tool
type GetProjectorOutput struct {
	Projector ProjectorInfo `json:"projector" jsonschema:"description=Projector information"`
}

// RenameProjectorOutput is the output for the rename_projector tool
type RenameProjectorOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the rename succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// RemoveProjectorOutput is the output for the remove_projector tool
type RemoveProjectorOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the removal succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Control Tools ---

// StateOutput is the output for the get_state, set_state, power_on,
// power_off and select_input tools
type StateOutput struct {
	ProjectorID string `json:"projector_id" jsonschema:"description=Projector serial number"`
	Power       string `json:"power" jsonschema:"description=Power state (on/standby/startup/cooling1/cooling2)"`
	Input       string `json:"input,omitempty" jsonschema:"description=Active input selector"`
	Muted       bool   `json:"muted" jsonschema:"description=Whether the picture is blanked"`
}

// PressKeyOutput is the output for the press_key tool
type PressKeyOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the keypress was acknowledged"`
	Key     string `json:"key" jsonschema:"description=Key that was pressed"`
}

// SendCommandOutput is the output for the send_command tool
type SendCommandOutput struct {
	Command string   `json:"command" jsonschema:"description=Command that was sent"`
	Ack     bool     `json:"ack" jsonschema:"description=Whether the device answered a bare acknowledgement"`
	Value   string   `json:"value,omitempty" jsonschema:"description=Returned value for queries"`
	Range   []string `json:"range,omitempty" jsonschema:"description=Allowed values for range queries"`
}

// GetSensorsOutput is the output for the get_sensors tool
type GetSensorsOutput struct {
	ProjectorID      string   `json:"projector_id" jsonschema:"description=Projector serial number"`
	LightSourceHours *int     `json:"light_source_hours,omitempty" jsonschema:"description=Light source usage counter in hours"`
	Temperature      string   `json:"temperature,omitempty" jsonschema:"description=Device temperature reading"`
	Errors           []string `json:"errors" jsonschema:"description=Active device error tokens"`
	Warnings         []string `json:"warnings" jsonschema:"description=Active device warning tokens"`
}

// --- Helper conversions ---

// ProjectorToInfo converts a registry.Projector to ProjectorInfo
func ProjectorToInfo(p *registry.Projector) ProjectorInfo {
	info := ProjectorInfo{
		ID:       p.ID,
		Name:     p.Name,
		Model:    p.Model,
		Address:  p.Address,
		ADCPPort: p.ADCPPort,
	}
	if p.LastSeen != nil {
		info.LastSeen = p.LastSeen.Format("2006-01-02 15:04:05")
	}
	return info
}
