package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewExtcheckMCPServer creates a new MCP server with all extcheck tools and
// resources registered. The projectPath is the root directory of the project
// to validate.
func NewExtcheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"extcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
