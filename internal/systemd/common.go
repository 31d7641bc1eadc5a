// Package systemd manages a systemd user service that keeps the HTTP server
// running across logins.
package systemd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	// UnitName is the systemd unit identifier
	UnitName = "micronpress.service"

	// DefaultPort is the default HTTP port
	DefaultPort = 4242

	// DefaultHost is the default HTTP host
	DefaultHost = "localhost"
)

// Config holds the systemd service configuration
type Config struct {
	BinaryPath string
	Host       string
	Port       int
	Debug      bool
	ConfigPath string
}

// UnitPath returns the full path of the user unit file
func UnitPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "systemd", "user", UnitName)
}

// IsActive checks if the service is currently active
func IsActive() bool {
	cmd := exec.Command("systemctl", "--user", "is-active", UnitName)
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "active"
}

// systemctl runs a systemctl --user subcommand and returns its combined
// output on failure.
func systemctl(args ...string) error {
	cmd := exec.Command("systemctl", append([]string{"--user"}, args...)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if len(output) > 0 {
			return &commandError{args: args, err: err, output: string(output)}
		}
		return &commandError{args: args, err: err}
	}
	return nil
}

type commandError struct {
	args   []string
	err    error
	output string
}

func (e *commandError) Error() string {
	if e.output != "" {
		return "systemctl --user " + strings.Join(e.args, " ") + ": " + e.err.Error() + " (output: " + strings.TrimSpace(e.output) + ")"
	}
	return "systemctl --user " + strings.Join(e.args, " ") + ": " + e.err.Error()
}

func (e *commandError) Unwrap() error { return e.err }
