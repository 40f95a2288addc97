// ABOUTME: MCP resource implementations for dreamdecoder
// ABOUTME: Exposes the symbol guide and project configuration as readable context
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/dreamdecoder/internal/config"
	"github.com/harper/dreamdecoder/internal/symbols"
)

const (
	symbolGuideURI    = "dreamdecoder://symbol-guide"
	projectContextURI = "dreamdecoder://project-context"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         symbolGuideURI,
		Name:        "Symbol Guide",
		Description: "Every known dream symbol with its traditional and psychological meaning",
		MIMEType:    "application/json",
	}, s.handleSymbolGuide)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         projectContextURI,
		Name:        "Project Context",
		Description: "Current directory's .dreamdecoder configuration, if any",
		MIMEType:    "application/json",
	}, s.handleProjectContext)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

// handleSymbolGuide implements the symbol-guide resource.
func (s *Server) handleSymbolGuide(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	guide, err := s.guide.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load symbol guide: %w", err)
	}

	meanings := make([]symbols.Meaning, 0, len(guide))
	for _, m := range guide {
		meanings = append(meanings, m)
	}
	sort.Slice(meanings, func(i, j int) bool {
		return meanings[i].SymbolName < meanings[j].SymbolName
	})
	return jsonResource(symbolGuideURI, meanings)
}

// handleProjectContext implements the project-context resource.
func (s *Server) handleProjectContext(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return s.projectContext(cwd)
}

type projectContext struct {
	HasProjectConfig bool           `json:"has_project_config"`
	ProjectRoot      string         `json:"project_root,omitempty"`
	Config           *config.Config `json:"config,omitempty"`
	Message          string         `json:"message"`
}

func (s *Server) projectContext(dir string) (*mcp.ReadResourceResult, error) {
	projectRoot, err := config.FindProjectRoot(dir)
	if err != nil {
		return nil, err
	}

	var ctxData projectContext
	if projectRoot == "" {
		ctxData.Message = "No .dreamdecoder project configuration found in current directory tree"
		return jsonResource(projectContextURI, ctxData)
	}

	ctxData.HasProjectConfig = true
	ctxData.ProjectRoot = projectRoot
	cfg, err := config.Load(filepath.Join(projectRoot, config.MarkerFile))
	if err != nil {
		ctxData.Message = fmt.Sprintf("Project configuration is unreadable: %v", err)
	} else {
		ctxData.Config = cfg
		ctxData.Message = "Project-specific dreamdecoder configuration found"
	}
	return jsonResource(projectContextURI, ctxData)
}
