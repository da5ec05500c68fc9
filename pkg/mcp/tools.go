package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health of the service and the projector registry"),
		),
		s.handleGetHealth,
	)

	// Discover projectors
	s.mcpServer.AddTool(
		mcp.NewTool("discover_projectors",
			mcp.WithDescription("Listen for projector announcement broadcasts on the local network and return the devices heard. Projectors announce roughly every 30 seconds."),
			mcp.WithNumber("window_seconds",
				mcp.Description("How long to listen in seconds (default 31, max 120)"),
			),
			mcp.WithBoolean("persist",
				mcp.Description("Add discovered projectors to the registry (default false)"),
			),
		),
		s.handleDiscoverProjectors,
	)

	// List projectors
	s.mcpServer.AddTool(
		mcp.NewTool("list_projectors",
			mcp.WithDescription("List all registered projectors"),
		),
		s.handleListProjectors,
	)

	// Get projector
	s.mcpServer.AddTool(
		mcp.NewTool("get_projector",
			mcp.WithDescription("Get registry details for one projector by serial number"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
		),
		s.handleGetProjector,
	)

	// Rename projector
	s.mcpServer.AddTool(
		mcp.NewTool("rename_projector",
			mcp.WithDescription("Change a projector's display name"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
			mcp.WithString("new_name",
				mcp.Required(),
				mcp.Description("New display name"),
			),
		),
		s.handleRenameProjector,
	)

	// Remove projector
	s.mcpServer.AddTool(
		mcp.NewTool("remove_projector",
			mcp.WithDescription("Remove a projector from the registry"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
		),
		s.handleRemoveProjector,
	)

	// Get state
	s.mcpServer.AddTool(
		mcp.NewTool("get_state",
			mcp.WithDescription("Get a projector's current power, input and mute state"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
		),
		s.handleGetState,
	)

	// Set state
	s.mcpServer.AddTool(
		mcp.NewTool("set_state",
			mcp.WithDescription("Set a projector's state. Power changes are applied before input and mute changes."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
			mcp.WithObject("state",
				mcp.Required(),
				mcp.Description("State to apply, e.g. {\"power\": \"on\", \"input\": \"hdmi1\", \"muted\": false}"),
			),
		),
		s.handleSetState,
	)

	// Power on (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("power_on",
			mcp.WithDescription("Switch a projector on"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
		),
		s.handlePowerOn,
	)

	// Power off (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("power_off",
			mcp.WithDescription("Put a projector into standby"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
		),
		s.handlePowerOff,
	)

	// Select input (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("select_input",
			mcp.WithDescription("Switch a projector to the given input"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
			mcp.WithString("input",
				mcp.Required(),
				mcp.Description("Input selector, e.g. hdmi1 or hdmi2"),
			),
		),
		s.handleSelectInput,
	)

	// Press remote key
	s.mcpServer.AddTool(
		mcp.NewTool("press_key",
			mcp.WithDescription("Emulate a remote-control keypress, e.g. menu, up, down, enter, lens_shift_up"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Key name"),
			),
		),
		s.handlePressKey,
	)

	// Raw command
	s.mcpServer.AddTool(
		mcp.NewTool("send_command",
			mcp.WithDescription("Send one raw protocol command, e.g. command=picture_mode value=\"cinema_film1\", or command=input parameter=? to query"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command token, e.g. picture_mode"),
			),
			mcp.WithString("value",
				mcp.Description("Value to set; select values need surrounding double quotes"),
			),
			mcp.WithString("parameter",
				mcp.Description("One of: ? (query), range, rel, reset, --info"),
			),
		),
		s.handleSendCommand,
	)

	// Sensors
	s.mcpServer.AddTool(
		mcp.NewTool("get_sensors",
			mcp.WithDescription("Read a projector's light source hours, temperature and active error/warning tokens"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Projector serial number"),
			),
		),
		s.handleGetSensors,
	)
}
