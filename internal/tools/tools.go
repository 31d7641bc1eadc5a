// Package tools implements the MCP tools that form the core functionality of
// the server: converting markdown to Micron, building the page tree, and
// fetching the node's dynamic pages.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all available tools with the MCP server
func RegisterAll(srv *mcp.Server) {
	RegisterConvertMarkdown(srv)
	RegisterBuildSite(srv)
	RegisterListPages(srv)
	RegisterGetPage(srv)
	RegisterFetchFeed(srv)
	RegisterNodeStatus(srv)
}
