package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/extcheck/extcheck/internal/adapters/outbound/config"
	"github.com/extcheck/extcheck/internal/adapters/outbound/gitinfo"
	"github.com/extcheck/extcheck/internal/adapters/outbound/scanner"
	"github.com/extcheck/extcheck/internal/application"
)

// registerTools registers all extcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. extcheck_structure
	s.AddTool(
		mcplib.NewTool("extcheck_structure",
			mcplib.WithDescription("Run the structural checklist against the project and return the full report as JSON"),
		),
		handleStructure(projectPath),
	)

	// 2. extcheck_validate
	s.AddTool(
		mcplib.NewTool("extcheck_validate",
			mcplib.WithDescription("Validate manifest.json against the files it declares and return issues and warnings as JSON"),
		),
		handleValidate(projectPath),
	)

	// 3. extcheck_manifest
	s.AddTool(
		mcplib.NewTool("extcheck_manifest",
			mcplib.WithDescription("Return the parsed manifest.json of the project as JSON"),
		),
		handleManifest(projectPath),
	)

	// 4. extcheck_checklist
	s.AddTool(
		mcplib.NewTool("extcheck_checklist",
			mcplib.WithDescription("Return the effective checklist (defaults merged with .extcheck.yaml) as JSON"),
		),
		handleChecklist(projectPath),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.StructureService, *application.ConsistencyService) {
	sc := scanner.New()
	cfg := config.New()
	git := gitinfo.New()
	return application.NewStructureService(sc, cfg, git),
		application.NewConsistencyService(sc, cfg, git)
}

func handleStructure(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		structureSvc, _ := newServices()
		report, err := structureSvc.Run(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("structure check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, consistencySvc := newServices()
		report, err := consistencySvc.Run(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleManifest(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, consistencySvc := newServices()
		m, _, _, err := consistencySvc.LoadManifest(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading manifest failed: %v", err)), nil
		}
		return jsonResult(m)
	}
}

func handleChecklist(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, consistencySvc := newServices()
		list, err := consistencySvc.Checklist(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading checklist failed: %v", err)), nil
		}
		return jsonResult(list)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
