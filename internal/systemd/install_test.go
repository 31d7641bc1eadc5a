package systemd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderUnit(t *testing.T) {
	cfg := &Config{
		BinaryPath: "/usr/local/bin/micronpress",
		Host:       "localhost",
		Port:       4242,
	}

	unit, err := renderUnit(cfg)
	if err != nil {
		t.Fatalf("renderUnit() error = %v", err)
	}

	want := "ExecStart=/usr/local/bin/micronpress run --transport=http --host=localhost --port=4242"
	if !strings.Contains(unit, want+"\n") {
		t.Errorf("renderUnit() missing %q in:\n%s", want, unit)
	}
	if !strings.Contains(unit, "WantedBy=default.target") {
		t.Errorf("renderUnit() missing install section:\n%s", unit)
	}
}

func TestRenderUnit_DebugAndConfig(t *testing.T) {
	cfg := &Config{
		BinaryPath: "/usr/local/bin/micronpress",
		Host:       "0.0.0.0",
		Port:       8080,
		Debug:      true,
		ConfigPath: "/etc/micronpress/site.yaml",
	}

	unit, err := renderUnit(cfg)
	if err != nil {
		t.Fatalf("renderUnit() error = %v", err)
	}

	if !strings.Contains(unit, " --debug --config=/etc/micronpress/site.yaml") {
		t.Errorf("renderUnit() missing debug and config flags:\n%s", unit)
	}
}

func TestWriteUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systemd", "user", UnitName)
	cfg := &Config{BinaryPath: "/bin/micronpress", Host: "localhost", Port: 4242}

	if err := writeUnit(cfg, path); err != nil {
		t.Fatalf("writeUnit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Description=micronpress") {
		t.Errorf("unit file = %q", string(data))
	}
}
