package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildConfig(t *testing.T) *Config {
	t.Helper()
	root := t.TempDir()
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Site.ContentDir = filepath.Join(root, "content")
	cfg.Site.OutputDir = filepath.Join(root, "pages")
	if err := os.MkdirAll(cfg.Site.ContentDir, 0755); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestBuild(t *testing.T) {
	cfg := buildConfig(t)
	writeContent(t, cfg.Site.ContentDir, "post.md", "# Title\n\nSome **bold** text.\n")
	writeContent(t, cfg.Site.ContentDir, "sub/page.md", "## Sub\n\n* item\n")
	writeContent(t, cfg.Site.ContentDir, "wip.md", "---\ndraft: true\n---\n# WIP\n")

	results, err := Build(cfg, false)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Build() returned %d results, want 2 (drafts skipped)", len(results))
	}

	data, err := os.ReadFile(filepath.Join(cfg.Site.OutputDir, "post.mu"))
	if err != nil {
		t.Fatalf("built page missing: %v", err)
	}
	want := "> `!Title`!\n\nSome `!bold`! text.\n\n"
	if string(data) != want {
		t.Errorf("post.mu = %q, want %q", string(data), want)
	}

	if _, err := os.Stat(filepath.Join(cfg.Site.OutputDir, "sub", "page.mu")); err != nil {
		t.Errorf("nested page not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Site.OutputDir, "wip.mu")); err == nil {
		t.Error("draft page should not be written")
	}

	index, err := os.ReadFile(filepath.Join(cfg.Site.OutputDir, "index.mu"))
	if err != nil {
		t.Fatalf("index.mu missing: %v", err)
	}
	if !strings.Contains(string(index), "`_`[Title`/page/post.mu]`_") {
		t.Errorf("index.mu does not link post:\n%s", index)
	}
	if strings.Contains(string(index), "wip.mu") {
		t.Error("index.mu should not list drafts")
	}
}

func TestBuild_HTMLMirror(t *testing.T) {
	cfg := buildConfig(t)
	writeContent(t, cfg.Site.ContentDir, "post.md", "# Title\n")

	results, err := Build(cfg, true)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(results) != 1 || results[0].HTMLPath == "" {
		t.Fatalf("Build() results = %+v, want one result with an HTML path", results)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Site.OutputDir, "html", "post.html"))
	if err != nil {
		t.Fatalf("HTML mirror missing: %v", err)
	}
	if !strings.Contains(string(data), "<h1>Title</h1>") {
		t.Errorf("HTML mirror content = %q", string(data))
	}
}
