package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/repos"
)

// Version is set via ldflags at build time.
var Version = "dev"

// CatalogFunc picks the project source for a persona.
type CatalogFunc func(p *content.Profile) repos.Catalog

// Server wraps an MCP server that exposes portfolio content as tools.
type Server struct {
	library *content.Library
	catalog CatalogFunc
	logger  *zap.Logger
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over the given personas.
func NewServer(library *content.Library, catalog CatalogFunc, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		library: library,
		catalog: catalog,
		logger:  logger,
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listProjectsTool, s.handleListProjects)
	s.mcp.AddTool(getProfileTool, s.handleGetProfile)
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
