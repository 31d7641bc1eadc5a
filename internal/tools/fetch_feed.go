package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/feeds"
	"github.com/nomad-mesh/micronpress/internal/site"
)

// FetchFeedInput defines input parameters for the fetch_feed tool
type FetchFeedInput struct {
	Config string `json:"config,omitempty" jsonschema:"Path to the node configuration YAML. Uses the embedded default configuration when omitted." long:"config" description:"Path to the node configuration YAML. Uses the embedded default configuration when omitted."`
	Name   string `json:"name" jsonschema:"Name of the configured feed (e.g. 'github', 'quakes', or an rss feed name)" long:"name" description:"Name of the configured feed (e.g. 'github', 'quakes', or an rss feed name)"`
}

// RegisterFetchFeed registers the fetch_feed tool with the MCP server
func RegisterFetchFeed(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "fetch_feed",
			Description: "Fetches a configured remote feed and returns its rendered Micron page. Results are served from the on-disk cache while fresh.",
			InputSchema: GenerateSchema[FetchFeedInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Fetch Feed",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(true),
			},
		},
		HandleFetchFeed,
	)
}

func HandleFetchFeed(ctx context.Context, request *mcp.CallToolRequest, input FetchFeedInput) (*mcp.CallToolResult, any, error) {
	if input.Name == "" {
		return nil, nil, fmt.Errorf("name is required")
	}

	cfg, err := site.LoadConfig(input.Config)
	if err != nil {
		return nil, nil, err
	}

	svc := feeds.NewService(cfg)
	page, err := svc.Page(ctx, input.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch feed %s: %w", input.Name, err)
	}

	return nil, map[string]any{"name": input.Name, "micron": page}, nil
}
