package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nomad-mesh/micronpress/internal/completion"
	"github.com/nomad-mesh/micronpress/internal/opts"
	"github.com/nomad-mesh/micronpress/internal/server"
	"github.com/nomad-mesh/micronpress/internal/site"
	"github.com/nomad-mesh/micronpress/internal/systemd"
	"github.com/nomad-mesh/micronpress/internal/tools"
)

const (
	serverName    = "micronpress"
	serverVersion = "0.1.0"
)

func main() {
	wireHandlers()

	parser, err := opts.Parse()
	if err != nil {
		log.Fatalf("Failed to parse options: %v", err)
	}

	if opts.GlobalOpts.Version {
		fmt.Printf("%s version %s\n", serverName, serverVersion)
		return
	}

	// No command specified: run the server with default options.
	if parser.Active == nil {
		if err := runServer(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// wireHandlers connects the command structs to their implementations. This
// must happen before Parse, since go-flags executes commands during parsing.
func wireHandlers() {
	opts.GlobalOpts.Run.Handler = runServer
	opts.GlobalOpts.Build.Handler = runBuild

	opts.GlobalOpts.Systemd.Install.Handler = func() error {
		cfg, err := systemd.DefaultConfig()
		if err != nil {
			return err
		}
		install := opts.GlobalOpts.Systemd.Install
		cfg.Host = install.Host
		cfg.Port = install.Port
		cfg.Debug = install.Debug
		cfg.ConfigPath = install.Config
		return systemd.Install(cfg)
	}
	opts.GlobalOpts.Systemd.Remove.Handler = systemd.Remove
	opts.GlobalOpts.Systemd.Restart.Handler = systemd.Restart

	opts.GlobalOpts.Completion.Bash.Handler = func() error {
		completion.GenerateBash()
		return nil
	}

	opts.GlobalOpts.Tool.ConvertMarkdown.Handler = func(input tools.ConvertMarkdownInput) error {
		return printToolResult(tools.HandleConvertMarkdown, input)
	}
	opts.GlobalOpts.Tool.BuildSite.Handler = func(input tools.BuildSiteInput) error {
		return printToolResult(tools.HandleBuildSite, input)
	}
	opts.GlobalOpts.Tool.ListPages.Handler = func(input tools.ListPagesInput) error {
		return printToolResult(tools.HandleListPages, input)
	}
	opts.GlobalOpts.Tool.GetPage.Handler = func(input tools.GetPageInput) error {
		return printToolResult(tools.HandleGetPage, input)
	}
	opts.GlobalOpts.Tool.FetchFeed.Handler = func(input tools.FetchFeedInput) error {
		return printToolResult(tools.HandleFetchFeed, input)
	}
	opts.GlobalOpts.Tool.NodeStatus.Handler = func(input tools.NodeStatusInput) error {
		return printToolResult(tools.HandleNodeStatus, input)
	}
}

// printToolResult runs a tool handler directly and prints its result as JSON.
func printToolResult[T any](handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error), input T) error {
	_, data, err := handler(context.Background(), nil, input)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tool result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runBuild() error {
	cfg, err := site.LoadConfig(opts.GlobalOpts.Build.Config)
	if err != nil {
		return err
	}
	results, err := site.Build(cfg, opts.GlobalOpts.Build.HTML)
	if err != nil {
		return err
	}
	for _, result := range results {
		log.Printf("Built %s -> %s", result.ID, result.OutputPath)
	}
	log.Printf("Built %d pages to %s", len(results), cfg.Site.OutputDir)
	return nil
}

// debugMiddleware logs all MCP requests and responses when debug is enabled
func debugMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if req != nil {
			p := req.GetParams()
			j, _ := json.MarshalIndent(p, "", "  ")
			log.Printf("[DEBUG] MCP Request: %s\nParams: %s\n", method, string(j))
		} else {
			log.Printf("[DEBUG] MCP Request: %s\n", method)
		}

		result, err := next(ctx, method, req)

		if err != nil {
			log.Printf("[DEBUG] MCP Response: %s\nError: %v\n", method, err)
		} else if result != nil {
			resultJSON, _ := json.MarshalIndent(result, "", "  ")
			log.Printf("[DEBUG] MCP Response: %s\nResult: %s\n", method, string(resultJSON))
		} else {
			log.Printf("[DEBUG] MCP Response: %s\n", method)
		}

		return result, err
	}
}

// createServer creates and configures a new MCP server instance
func createServer(debug bool) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	if debug {
		srv.AddReceivingMiddleware(debugMiddleware)
	}

	tools.RegisterAll(srv)

	return srv
}

func runServer() error {
	ctx := context.Background()
	run := opts.GlobalOpts.Run

	// Validate the configuration up front so a broken config fails fast
	// instead of on the first tool call.
	cfg, err := site.LoadConfig(run.Config)
	if err != nil {
		return err
	}

	// Log to stderr (stdout is used for MCP communication in stdio mode)
	log.Printf("%s v%s initialized\n", serverName, serverVersion)

	srv := createServer(run.Debug)

	switch run.Transport {
	case "stdio":
		log.Println("Using STDIO transport")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return err
		}
	case "http":
		addr := fmt.Sprintf("%s:%d", run.Host, run.Port)

		handler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				// since we are stateless, we can return the same server instance
				return srv
			},
			&mcp.StreamableHTTPOptions{
				Stateless: true,
			},
		)

		// Serve the page tree alongside the MCP endpoint so the node's
		// pages can be previewed in a browser.
		mux := http.NewServeMux()
		mux.Handle("/mcp", handler)
		mux.Handle("/", server.New(cfg))

		httpServer := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		log.Printf("HTTP server listening on http://%s (MCP endpoint at /mcp)\n", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported transport: %s", run.Transport)
	}

	return nil
}
