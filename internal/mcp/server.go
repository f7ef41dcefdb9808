// ABOUTME: MCP server setup for the Garmin Connect bridge.
// ABOUTME: Wraps the MCP server with the authenticated provider client.
package mcp

import (
	"context"

	"github.com/harperreed/garmin/internal/garmin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with provider access.
type Server struct {
	mcpServer *mcp.Server
	client    garmin.API
}

// NewServer creates a new MCP server backed by the given provider client.
func NewServer(client garmin.API) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "garmin",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		client:    client,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
