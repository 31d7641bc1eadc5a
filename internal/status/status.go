// Package status runs the configured node status command and renders its
// output as a Micron page.
package status

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/nomad-mesh/micronpress/internal/log"
	"github.com/nomad-mesh/micronpress/internal/site"
)

// Run executes the status command with the given timeout and returns its
// combined output. The command string is split on whitespace; shell syntax
// is not interpreted.
func Run(ctx context.Context, command string, timeout time.Duration) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("no status command configured")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if len(output) > 0 {
			return "", fmt.Errorf("status command failed: %w\nOutput: %s", err, string(output))
		}
		return "", fmt.Errorf("status command failed: %w", err)
	}
	return string(output), nil
}

// Page renders the node status page. Command failures are rendered into the
// page rather than returned, so a broken status command still produces a
// readable page on the mesh.
func Page(ctx context.Context, cfg *site.Config, now time.Time) string {
	var lines []string
	lines = append(lines, "> `!Node Status`!")
	lines = append(lines, fmt.Sprintf("`!Generated (UTC):` %s", now.UTC().Format("2006-01-02 15:04:05 MST")))
	lines = append(lines, "-")

	output, err := Run(ctx, cfg.Status.Command, cfg.StatusTimeout())
	if err != nil {
		log.FromContext(ctx).Printf("Status command failed: %v", err)
		lines = append(lines, ">> `!Error`!")
		lines = append(lines, "`=")
		lines = append(lines, err.Error())
		lines = append(lines, "``")
	} else {
		lines = append(lines, "`=")
		lines = append(lines, strings.TrimRight(output, "\n"))
		lines = append(lines, "``")
	}
	lines = append(lines, "-")

	return strings.Join(lines, "\n")
}
