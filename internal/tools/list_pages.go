package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/site"
)

// ListPagesInput defines input parameters for the list_pages tool
type ListPagesInput struct {
	Config        string `json:"config,omitempty" jsonschema:"Path to the node configuration YAML. Uses the embedded default configuration when omitted." long:"config" description:"Path to the node configuration YAML. Uses the embedded default configuration when omitted."`
	IncludeDrafts bool   `json:"include_drafts,omitempty" jsonschema:"Include pages marked as drafts" long:"include-drafts" description:"Include pages marked as drafts"`
}

// PageInfo is one content page as reported by list_pages.
type PageInfo struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary,omitempty"`
	Draft    bool      `json:"draft,omitempty"`
	Modified time.Time `json:"modified"`
}

// RegisterListPages registers the list_pages tool with the MCP server
func RegisterListPages(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "list_pages",
			Description: "Lists the markdown pages in the content dir with their metadata. Drafts are excluded unless include_drafts is set.",
			InputSchema: GenerateSchema[ListPagesInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "List Pages",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		HandleListPages,
	)
}

func HandleListPages(ctx context.Context, request *mcp.CallToolRequest, input ListPagesInput) (*mcp.CallToolResult, any, error) {
	cfg, err := site.LoadConfig(input.Config)
	if err != nil {
		return nil, nil, err
	}

	pages, err := site.LoadPages(cfg.Site.ContentDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pages: %w", err)
	}

	infos := []PageInfo{}
	for _, page := range pages {
		if page.Draft && !input.IncludeDrafts {
			continue
		}
		infos = append(infos, PageInfo{
			ID:       page.ID,
			Title:    page.Title,
			Summary:  page.Summary,
			Draft:    page.Draft,
			Modified: page.Modified,
		})
	}

	return nil, map[string]any{"pages": infos}, nil
}
