package tools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/site"
	"github.com/nomad-mesh/micronpress/internal/status"
)

// NodeStatusInput defines input parameters for the node_status tool
type NodeStatusInput struct {
	Config string `json:"config,omitempty" jsonschema:"Path to the node configuration YAML. Uses the embedded default configuration when omitted." long:"config" description:"Path to the node configuration YAML. Uses the embedded default configuration when omitted."`
}

// RegisterNodeStatus registers the node_status tool with the MCP server
func RegisterNodeStatus(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "node_status",
			Description: "Runs the configured status command and returns the rendered Micron status page. Command failures are rendered into the page.",
			InputSchema: GenerateSchema[NodeStatusInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Node Status",
				ReadOnlyHint:    true,
				IdempotentHint:  false,
				DestructiveHint: new(false),
				OpenWorldHint:   new(true),
			},
		},
		HandleNodeStatus,
	)
}

func HandleNodeStatus(ctx context.Context, request *mcp.CallToolRequest, input NodeStatusInput) (*mcp.CallToolResult, any, error) {
	cfg, err := site.LoadConfig(input.Config)
	if err != nil {
		return nil, nil, err
	}

	return nil, map[string]any{"micron": status.Page(ctx, cfg, time.Now())}, nil
}
