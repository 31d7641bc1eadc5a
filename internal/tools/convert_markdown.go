package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/micron"
)

// ConvertMarkdownInput defines input parameters for the convert_markdown tool
type ConvertMarkdownInput struct {
	Markdown     string `json:"markdown" jsonschema:"The markdown document to convert to Micron" long:"markdown" description:"The markdown document to convert to Micron"`
	CacheSeconds *int   `json:"cache_seconds,omitempty" jsonschema:"Optional cache lifetime in seconds. When set, a '#!c=' directive line is prefixed to the output." long:"cache-seconds" description:"Optional cache lifetime in seconds. When set, a '#!c=' directive line is prefixed to the output."`
}

// RegisterConvertMarkdown registers the convert_markdown tool with the MCP server
func RegisterConvertMarkdown(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "convert_markdown",
			Description: "Converts a markdown document to Micron markup for NomadNet nodes. The conversion is line-preserving: the output has exactly one line per input line.",
			InputSchema: GenerateSchema[ConvertMarkdownInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Convert Markdown",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		HandleConvertMarkdown,
	)
}

func HandleConvertMarkdown(ctx context.Context, request *mcp.CallToolRequest, input ConvertMarkdownInput) (*mcp.CallToolResult, any, error) {
	if input.Markdown == "" {
		return nil, nil, fmt.Errorf("markdown is required")
	}

	page := micron.Convert(input.Markdown)
	if input.CacheSeconds != nil {
		if *input.CacheSeconds < 0 {
			return nil, nil, fmt.Errorf("cache_seconds cannot be negative")
		}
		page = micron.WithCacheDirective(page, *input.CacheSeconds)
	}

	return nil, map[string]any{"micron": page}, nil
}
