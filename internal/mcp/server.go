// ABOUTME: MCP server implementation for dreamdecoder
// ABOUTME: Exposes the dream journal to AI assistants as tools, resources and prompts
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
	"github.com/harper/dreamdecoder/internal/symbols"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Deps are the services the MCP server exposes.
type Deps struct {
	Journal  *journal.Store
	Guide    *symbols.Guide
	Insights *insights.Service
	Logger   zerolog.Logger
}

// Server wraps the MCP server with dream journal functionality.
type Server struct {
	mcpServer *mcp.Server
	journal   *journal.Store
	guide     *symbols.Guide
	insights  *insights.Service
	log       zerolog.Logger
}

// NewServer creates a new dreamdecoder MCP server.
func NewServer(deps Deps) *Server {
	impl := &mcp.Implementation{
		Name:    "dreamdecoder",
		Version: Version,
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		journal:   deps.Journal,
		guide:     deps.Guide,
		insights:  deps.Insights,
		log:       deps.Logger,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Msg("mcp server starting on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
