package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/micron"
	"github.com/nomad-mesh/micronpress/internal/site"
)

// GetPageInput defines input parameters for the get_page tool
type GetPageInput struct {
	Config string `json:"config,omitempty" jsonschema:"Path to the node configuration YAML. Uses the embedded default configuration when omitted." long:"config" description:"Path to the node configuration YAML. Uses the embedded default configuration when omitted."`
	ID     string `json:"id" jsonschema:"Page id, the content-relative path without extension (e.g. 'about' or 'guides/setup')" long:"id" description:"Page id, the content-relative path without extension (e.g. 'about' or 'guides/setup')"`
	Raw    bool   `json:"raw,omitempty" jsonschema:"Return the markdown source instead of the Micron conversion" long:"raw" description:"Return the markdown source instead of the Micron conversion"`
}

// RegisterGetPage registers the get_page tool with the MCP server
func RegisterGetPage(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "get_page",
			Description: "Returns a single content page, converted to Micron by default. Set raw to get the markdown source with front matter stripped.",
			InputSchema: GenerateSchema[GetPageInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Get Page",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		HandleGetPage,
	)
}

func HandleGetPage(ctx context.Context, request *mcp.CallToolRequest, input GetPageInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return nil, nil, fmt.Errorf("id is required")
	}

	cfg, err := site.LoadConfig(input.Config)
	if err != nil {
		return nil, nil, err
	}

	page, err := site.FindPage(cfg.Site.ContentDir, input.ID)
	if err != nil {
		return nil, nil, err
	}

	body := page.Body
	if !input.Raw {
		body = micron.Convert(page.Body)
	}

	return nil, map[string]any{
		"id":    page.ID,
		"title": page.Title,
		"body":  body,
	}, nil
}
