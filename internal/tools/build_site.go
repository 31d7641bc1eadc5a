package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/site"
)

// BuildSiteInput defines input parameters for the build_site tool
type BuildSiteInput struct {
	Config string `json:"config,omitempty" jsonschema:"Path to the node configuration YAML. Uses the embedded default configuration when omitted." long:"config" description:"Path to the node configuration YAML. Uses the embedded default configuration when omitted."`
	HTML   bool   `json:"html,omitempty" jsonschema:"Also write an HTML mirror of every page under <output>/html" long:"html" description:"Also write an HTML mirror of every page under <output>/html"`
}

// RegisterBuildSite registers the build_site tool with the MCP server
func RegisterBuildSite(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "build_site",
			Description: "Builds the page tree: converts every non-draft content page to Micron, writes the .mu files to the output dir, and regenerates the index page.",
			InputSchema: GenerateSchema[BuildSiteInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Build Site",
				ReadOnlyHint:    false,
				IdempotentHint:  true,
				DestructiveHint: new(true),
				OpenWorldHint:   new(false),
			},
		},
		HandleBuildSite,
	)
}

func HandleBuildSite(ctx context.Context, request *mcp.CallToolRequest, input BuildSiteInput) (*mcp.CallToolResult, any, error) {
	cfg, err := site.LoadConfig(input.Config)
	if err != nil {
		return nil, nil, err
	}

	results, err := site.Build(cfg, input.HTML)
	if err != nil {
		return nil, nil, fmt.Errorf("build failed: %w", err)
	}

	return nil, map[string]any{"pages": results}, nil
}
