package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContent(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPages(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "hello.md", "---\ntitle: Hello Page\nsummary: greetings\n---\n# Hello\n\nbody text\n")
	writeContent(t, dir, "notes/deep.md", "## Deep Note\n\ncontent\n")
	writeContent(t, dir, "untitled.md", "no headings here\n")
	writeContent(t, dir, "draft.md", "---\ntitle: WIP\ndraft: true\n---\nnot ready\n")
	writeContent(t, dir, "ignored.txt", "not markdown")

	pages, err := LoadPages(dir)
	if err != nil {
		t.Fatalf("LoadPages() error = %v", err)
	}

	if len(pages) != 4 {
		t.Fatalf("LoadPages() returned %d pages, want 4", len(pages))
	}

	// Sorted by ID.
	wantIDs := []string{"draft", "hello", "notes/deep", "untitled"}
	for i, want := range wantIDs {
		if pages[i].ID != want {
			t.Errorf("pages[%d].ID = %q, want %q", i, pages[i].ID, want)
		}
	}

	byID := map[string]Page{}
	for _, p := range pages {
		byID[p.ID] = p
	}

	if got := byID["hello"]; got.Title != "Hello Page" || got.Summary != "greetings" {
		t.Errorf("front matter not applied: %+v", got)
	}
	if strings.Contains(byID["hello"].Body, "title:") {
		t.Error("front matter should be stripped from the body")
	}
	if got := byID["notes/deep"].Title; got != "Deep Note" {
		t.Errorf("heading fallback title = %q, want %q", got, "Deep Note")
	}
	if got := byID["untitled"].Title; got != "untitled" {
		t.Errorf("ID fallback title = %q, want %q", got, "untitled")
	}
	if !byID["draft"].Draft {
		t.Error("draft flag not parsed")
	}
}

func TestLoadPages_BrokenFrontMatterBecomesErrorPage(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "broken.md", "---\ntitle: [unclosed\n---\nbody\n")

	pages, err := LoadPages(dir)
	if err != nil {
		t.Fatalf("LoadPages() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("LoadPages() returned %d pages, want 1", len(pages))
	}
	if !strings.Contains(pages[0].Body, "# Error") {
		t.Errorf("broken page should carry an error block, got %q", pages[0].Body)
	}
}

func TestLoadPages_MissingDir(t *testing.T) {
	if _, err := LoadPages(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("LoadPages() should fail for a missing content dir")
	}
}

func TestFindPage(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "a.md", "# A\n")

	page, err := FindPage(dir, "a")
	if err != nil {
		t.Fatalf("FindPage() error = %v", err)
	}
	if page.Title != "A" {
		t.Errorf("page title = %q, want %q", page.Title, "A")
	}

	_, err = FindPage(dir, "missing")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FindPage() error = %v, want os.ErrNotExist", err)
	}
}
