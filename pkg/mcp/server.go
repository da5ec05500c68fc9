// Package mcp exposes projector discovery and control as MCP tools over
// stdio, for use from LLM agents.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/pmartell/sonyadcp/pkg/registry"
	"github.com/pmartell/sonyadcp/pkg/sdap"
)

// Server wraps the MCP server with projector control functionality
type Server struct {
	mcpServer *server.MCPServer
	registry  *registry.Registry
	listener  *sdap.Listener
}

// NewServer creates a new MCP server for projector control
func NewServer(reg *registry.Registry, listener *sdap.Listener) *Server {
	s := &Server{
		registry: reg,
		listener: listener,
	}

	s.mcpServer = server.NewMCPServer(
		"sonyadcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
