package opts

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/nomad-mesh/micronpress/internal/opts/typed_flags"
	"github.com/nomad-mesh/micronpress/internal/tools"
)

// Options defines the command-line options for the server
type Options struct {
	Version bool `long:"version" short:"v" description:"Show version information and exit"`

	Run        RunCmd        `command:"run" description:"Run the MCP server"`
	Build      BuildCmd      `command:"build" description:"Build the Micron page tree from the content dir"`
	Systemd    SystemdCmd    `command:"systemd" description:"Manage the systemd user service"`
	Completion CompletionCmd `command:"completion" description:"Generate completion scripts"`
	Tool       ToolCmd       `command:"tool" description:"Execute a tool directly"`
}

// RunCmd defines the 'run' command
type RunCmd struct {
	Transport typed_flags.Transport `long:"transport" env:"MICRONPRESS_TRANSPORT" description:"Transport type: stdio or http" default:"stdio"`
	Port      int                   `long:"port" env:"MICRONPRESS_PORT" description:"HTTP port (only used with --transport=http)" default:"4242"`
	Host      string                `long:"host" env:"MICRONPRESS_HOST" description:"HTTP host (only used with --transport=http)" default:"localhost"`
	Debug     bool                  `long:"debug" env:"MICRONPRESS_DEBUG" description:"Enable debug logging of tool calls and results to stderr"`
	Config    string                `long:"config" env:"MICRONPRESS_CONFIG" description:"Path to node configuration YAML (uses embedded default if not specified)"`

	Handler func() error
}

// Execute runs the run command
func (c *RunCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// BuildCmd defines the 'build' command
type BuildCmd struct {
	Config string `long:"config" env:"MICRONPRESS_CONFIG" description:"Path to node configuration YAML (uses embedded default if not specified)"`
	HTML   bool   `long:"html" description:"Also write an HTML mirror of every page"`

	Handler func() error
}

// Execute runs the build command
func (c *BuildCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// CompletionCmd holds completion subcommands
type CompletionCmd struct {
	Bash CompletionBashCmd `command:"bash" description:"Generate bash completion script"`
}

// CompletionBashCmd represents the 'completion bash' command
type CompletionBashCmd struct {
	Handler func() error
}

// Execute runs the completion bash command
func (c *CompletionBashCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// SystemdCmd holds systemd subcommands
type SystemdCmd struct {
	Install SystemdInstallCmd `command:"install" description:"Install the systemd user service"`
	Remove  SystemdRemoveCmd  `command:"remove" description:"Remove the systemd user service"`
	Restart SystemdRestartCmd `command:"restart" description:"Restart the systemd user service"`
}

// SystemdInstallCmd represents the 'systemd install' command
type SystemdInstallCmd struct {
	Port   int    `long:"port" description:"HTTP port for the service" default:"4242"`
	Host   string `long:"host" description:"HTTP host for the service" default:"localhost"`
	Debug  bool   `long:"debug" description:"Enable debug logging for the service"`
	Config string `long:"config" description:"Path to node configuration YAML for the service"`

	Handler func() error
}

// Execute runs the systemd install command
func (c *SystemdInstallCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// SystemdRemoveCmd represents the 'systemd remove' command
type SystemdRemoveCmd struct {
	Handler func() error
}

// Execute runs the systemd remove command
func (c *SystemdRemoveCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// SystemdRestartCmd represents the 'systemd restart' command
type SystemdRestartCmd struct {
	Handler func() error
}

// Execute runs the systemd restart command
func (c *SystemdRestartCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// ToolCmd holds tool subcommands
type ToolCmd struct {
	ConvertMarkdown ConvertMarkdownCmd `command:"convert_markdown" description:"Convert a markdown document to Micron"`
	BuildSite       BuildSiteCmd       `command:"build_site" description:"Build the page tree"`
	ListPages       ListPagesCmd       `command:"list_pages" description:"List the content pages with their metadata"`
	GetPage         GetPageCmd         `command:"get_page" description:"Return a single content page"`
	FetchFeed       FetchFeedCmd       `command:"fetch_feed" description:"Fetch a configured feed as a Micron page"`
	NodeStatus      NodeStatusCmd      `command:"node_status" description:"Run the status command and render the status page"`
}

// ConvertMarkdownCmd represents the 'tool convert_markdown' command
type ConvertMarkdownCmd struct {
	tools.ConvertMarkdownInput
	Handler func(tools.ConvertMarkdownInput) error
}

// Execute runs the convert_markdown tool command
func (c *ConvertMarkdownCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.ConvertMarkdownInput)
	}
	return nil
}

// BuildSiteCmd represents the 'tool build_site' command
type BuildSiteCmd struct {
	tools.BuildSiteInput
	Handler func(tools.BuildSiteInput) error
}

// Execute runs the build_site tool command
func (c *BuildSiteCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.BuildSiteInput)
	}
	return nil
}

// ListPagesCmd represents the 'tool list_pages' command
type ListPagesCmd struct {
	tools.ListPagesInput
	Handler func(tools.ListPagesInput) error
}

// Execute runs the list_pages tool command
func (c *ListPagesCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.ListPagesInput)
	}
	return nil
}

// GetPageCmd represents the 'tool get_page' command
type GetPageCmd struct {
	tools.GetPageInput
	Handler func(tools.GetPageInput) error
}

// Execute runs the get_page tool command
func (c *GetPageCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.GetPageInput)
	}
	return nil
}

// FetchFeedCmd represents the 'tool fetch_feed' command
type FetchFeedCmd struct {
	tools.FetchFeedInput
	Handler func(tools.FetchFeedInput) error
}

// Execute runs the fetch_feed tool command
func (c *FetchFeedCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.FetchFeedInput)
	}
	return nil
}

// NodeStatusCmd represents the 'tool node_status' command
type NodeStatusCmd struct {
	tools.NodeStatusInput
	Handler func(tools.NodeStatusInput) error
}

// Execute runs the node_status tool command
func (c *NodeStatusCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.NodeStatusInput)
	}
	return nil
}

var GlobalOpts = Options{}

// Parse parses command-line arguments and environment variables
// It also loads .env file if present (but doesn't fail if missing)
func Parse() (*flags.Parser, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	// This allows local development with .env files while working in production with env vars
	_ = godotenv.Load()

	parser := flags.NewParser(&GlobalOpts, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				// Print help message
				parser.WriteHelp(os.Stdout)
				os.Exit(0)
			case flags.ErrCommandRequired:
				// No command specified - that's OK, we'll run the server
				return parser, nil
			default:
				return nil, fmt.Errorf("failed to parse options: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return parser, nil
}
