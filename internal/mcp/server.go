// ABOUTME: MCP server setup for the MacroFactor client.
// ABOUTME: Wraps the MCP server with the API client and persisted config.
package mcp

import (
	"context"

	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with an authenticated API client.
type Server struct {
	mcpServer *mcp.Server
	client    *api.Client
	cfg       *config.Config
}

// NewServer creates a new MCP server over the given session.
func NewServer(cfg *config.Config, client *api.Client) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "macrofactor",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		client:    client,
		cfg:       cfg,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// persist writes the config back when the service rotated the refresh token
// during this session. Every authenticated handler calls it after a
// successful API call so a rotation is never lost at process exit.
func (s *Server) persist() error {
	if tok := s.client.RefreshToken(); tok != "" && tok != s.cfg.RefreshToken {
		s.cfg.RefreshToken = tok
		return s.cfg.Save()
	}
	return nil
}

// persistSearch writes the config back with a new search cache, folding in
// any rotated refresh token.
func (s *Server) persistSearch(cache *config.SearchCache) error {
	if tok := s.client.RefreshToken(); tok != "" {
		s.cfg.RefreshToken = tok
	}
	s.cfg.LastSearch = cache
	return s.cfg.Save()
}
