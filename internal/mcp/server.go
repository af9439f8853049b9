package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "displayctl"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing display configuration tools.
type Server struct {
	mcpServer *mcpsdk.Server
}

// NewServer creates the MCP server and registers its tools.
func NewServer() *Server {
	s := &Server{}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_displays",
		Description: "List all displays with their id, name, connection state and current settings. Positions are relative to the primary display, which sits at 0,0.",
	}, s.handleListDisplays)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_modes",
		Description: "List the modes a display advertises (resolution and refresh rate), marking the preferred and the currently set mode.",
	}, s.handleListModes)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_primary",
		Description: "Make a display the primary display. Every display keeps its position relative to the new primary, which becomes the origin.",
	}, s.handleSetPrimary)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_properties",
		Description: "Change properties of one display. Only the supplied properties change; everything else keeps its current value. Values use the CLI syntax, e.g. position \"1920,0\", resolution \"2560x1440\".",
	}, s.handleSetProperties)
}
