package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/extcheck/extcheck/internal/domain"
)

// registerResources registers all extcheck MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. extcheck://structure - structure suite report
	s.AddResource(
		mcplib.NewResource(
			"extcheck://structure",
			"Structure Report",
			mcplib.WithResourceDescription("Result of the structural checklist run for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleStructureResource(projectPath),
	)

	// 2. extcheck://validation - manifest consistency report
	s.AddResource(
		mcplib.NewResource(
			"extcheck://validation",
			"Validation Report",
			mcplib.WithResourceDescription("Manifest consistency report: fatal issues and warnings"),
			mcplib.WithMIMEType("application/json"),
		),
		handleValidationResource(projectPath),
	)

	// 3. extcheck://manifest - raw manifest.json
	s.AddResource(
		mcplib.NewResource(
			"extcheck://manifest",
			"Manifest",
			mcplib.WithResourceDescription("Raw manifest.json of the extension"),
			mcplib.WithMIMEType("application/json"),
		),
		handleManifestResource(projectPath),
	)

	// 4. extcheck://extension/{path} - declared extension file content
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"extcheck://extension/{path}",
			"Extension File",
			mcplib.WithTemplateDescription("Captured content of a file inside the extension directory"),
			mcplib.WithTemplateMIMEType("text/plain"),
		),
		handleExtensionFileResource(projectPath),
	)
}

func handleStructureResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		structureSvc, _ := newServices()
		report, err := structureSvc.Run(projectPath)
		if err != nil {
			return nil, fmt.Errorf("structure check failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "extcheck://structure",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleValidationResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, consistencySvc := newServices()
		report, err := consistencySvc.Run(projectPath)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "extcheck://validation",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleManifestResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, consistencySvc := newServices()
		_, scan, list, err := consistencySvc.LoadManifest(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading manifest failed: %w", err)
		}

		raw, err := scan.ReadFile(domain.ResolveRef(list.ExtensionDir, "manifest.json"))
		if err != nil {
			return nil, fmt.Errorf("reading manifest: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "extcheck://manifest",
				MIMEType: "application/json",
				Text:     string(raw),
			},
		}, nil
	}
}

func handleExtensionFileResource(projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Extract the path from the arguments (populated by template matching)
		relPath, ok := request.Params.Arguments["path"].(string)
		if !ok || relPath == "" {
			return nil, fmt.Errorf("file path is required")
		}

		_, consistencySvc := newServices()
		_, scan, list, err := consistencySvc.LoadManifest(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading project failed: %w", err)
		}

		data, err := scan.ReadFile(domain.ResolveRef(list.ExtensionDir, relPath))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", relPath, err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     string(data),
			},
		}, nil
	}
}
