package systemd

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/micronpress.service.tmpl
var unitTemplate string

// DefaultConfig returns the default systemd configuration, resolving the
// binary path of the current executable so the unit file survives upgrades
// through a stable symlink.
func DefaultConfig() (*Config, error) {
	currentExe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	binaryPath, err := filepath.EvalSymlinks(currentExe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve binary path: %w", err)
	}

	return &Config{
		BinaryPath: binaryPath,
		Host:       DefaultHost,
		Port:       DefaultPort,
	}, nil
}

// renderUnit executes the unit template with the given configuration.
func renderUnit(cfg *Config) (string, error) {
	tmpl, err := template.New("unit").Parse(unitTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse unit template: %w", err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, cfg); err != nil {
		return "", fmt.Errorf("failed to render unit file: %w", err)
	}
	return sb.String(), nil
}

// writeUnit renders the unit file and writes it under the user unit dir.
func writeUnit(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create unit directory: %w", err)
	}
	unit, err := renderUnit(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(unit), 0644); err != nil {
		return fmt.Errorf("failed to write unit file: %w", err)
	}
	return nil
}

// Install writes the unit file and enables the service.
func Install(cfg *Config) error {
	unitPath := UnitPath()
	fmt.Printf("Writing systemd unit to %s\n", unitPath)
	if err := writeUnit(cfg, unitPath); err != nil {
		return err
	}

	if err := systemctl("daemon-reload"); err != nil {
		return err
	}
	fmt.Println("Enabling and starting service...")
	if err := systemctl("enable", "--now", UnitName); err != nil {
		return err
	}

	if !IsActive() {
		fmt.Println("Service enabled but not active. Check logs with:")
		fmt.Printf("  journalctl --user -u %s\n", UnitName)
		return fmt.Errorf("service enabled but not active")
	}

	fmt.Println("Service installed and running.")
	fmt.Printf("  Endpoint: http://%s:%d\n", cfg.Host, cfg.Port)
	fmt.Printf("  Logs:     journalctl --user -u %s -f\n", UnitName)
	return nil
}
