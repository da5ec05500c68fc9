package types

import (
	"time"

	"github.com/pmartell/sonyadcp/pkg/sdap"
)

// --- Request DTOs ---

// DiscoverRequest is the request body for POST /discovery
type DiscoverRequest struct {
	WindowSeconds int  `json:"window_seconds"`
	Persist       bool `json:"persist"`
}

// AddProjectorRequest is the request body for POST /projectors
type AddProjectorRequest struct {
	ID             string `json:"id" binding:"required"`
	Name           string `json:"name"`
	Address        string `json:"address" binding:"required"`
	ADCPPort       int    `json:"adcp_port"`
	Password       string `json:"password"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// UpdateProjectorRequest is the request body for PATCH /projectors/:id.
// Only the fields present in the body are changed.
type UpdateProjectorRequest struct {
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	ADCPPort       *int    `json:"adcp_port"`
	Password       *string `json:"password"`
	TimeoutSeconds *int    `json:"timeout_seconds"`
}

// CommandRequest is the request body for POST /projectors/:id/command
type CommandRequest struct {
	Command   string `json:"command" binding:"required"`
	Value     string `json:"value"`
	Parameter string `json:"parameter"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status     string    `json:"status"`
	Registry   string    `json:"registry"`
	Projectors int       `json:"projectors"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProjectorInfo describes one registered projector
type ProjectorInfo struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Model          string     `json:"model,omitempty"`
	Address        string     `json:"address"`
	ADCPPort       int        `json:"adcp_port"`
	TimeoutSeconds int        `json:"timeout_seconds"`
	LastSeen       *time.Time `json:"last_seen,omitempty"`
}

// ListProjectorsResponse is returned from GET /projectors
type ListProjectorsResponse struct {
	Projectors []ProjectorInfo `json:"projectors"`
	Count      int             `json:"count"`
}

// ProjectorResponse is returned from GET /projectors/:id
type ProjectorResponse struct {
	Projector ProjectorInfo `json:"projector"`
}

// DiscoverResponse is returned from POST /discovery
type DiscoverResponse struct {
	Devices       []sdap.Device `json:"devices"`
	Count         int           `json:"count"`
	WindowSeconds int           `json:"window_seconds"`
	Persisted     bool          `json:"persisted"`
}

// StateResponse is returned from GET/POST /projectors/:id/state
type StateResponse struct {
	Projector string    `json:"projector"`
	Power     string    `json:"power"`
	Input     string    `json:"input,omitempty"`
	Muted     bool      `json:"muted"`
	Timestamp time.Time `json:"timestamp"`
}

// CommandResponse is returned from POST /projectors/:id/command
type CommandResponse struct {
	Command string   `json:"command"`
	Ack     bool     `json:"ack"`
	Value   string   `json:"value,omitempty"`
	Range   []string `json:"range,omitempty"`
}

// KeyResponse is returned from POST /projectors/:id/keys/:key
type KeyResponse struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// SensorsResponse is returned from GET /projectors/:id/sensors
type SensorsResponse struct {
	Projector        string   `json:"projector"`
	LightSourceHours *int     `json:"light_source_hours,omitempty"`
	Temperature      string   `json:"temperature,omitempty"`
	Errors           []string `json:"errors"`
	Warnings         []string `json:"warnings"`
}
