package site

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nomad-mesh/micronpress/internal/md"
	"github.com/nomad-mesh/micronpress/internal/micron"
)

// BuildResult records the outcome of building a single page.
type BuildResult struct {
	ID         string `json:"id"`
	OutputPath string `json:"output_path"`
	HTMLPath   string `json:"html_path,omitempty"`
}

// Build converts every non-draft content page to Micron, writes the result
// under the output dir mirroring the content tree, and regenerates
// index.mu. When withHTML is set an HTML mirror is written under
// <output>/html as well.
func Build(cfg *Config, withHTML bool) ([]BuildResult, error) {
	pages, err := LoadPages(cfg.Site.ContentDir)
	if err != nil {
		return nil, err
	}

	var results []BuildResult
	for _, page := range pages {
		if page.Draft {
			continue
		}

		outPath := filepath.Join(cfg.Site.OutputDir, filepath.FromSlash(page.ID)+".mu")
		if err := writePage(outPath, micron.Convert(page.Body)); err != nil {
			return results, err
		}
		result := BuildResult{ID: page.ID, OutputPath: outPath}

		if withHTML {
			html, err := md.Render(page.Body)
			if err != nil {
				return results, fmt.Errorf("failed to render HTML for %s: %w", page.ID, err)
			}
			htmlPath := filepath.Join(cfg.Site.OutputDir, "html", filepath.FromSlash(page.ID)+".html")
			if err := writePage(htmlPath, html); err != nil {
				return results, err
			}
			result.HTMLPath = htmlPath
		}

		results = append(results, result)
	}

	indexPath := filepath.Join(cfg.Site.OutputDir, "index.mu")
	index := RenderIndex(cfg.Site.Title, pages, time.Now().UTC())
	if err := writePage(indexPath, index); err != nil {
		return results, err
	}

	return results, nil
}

// writePage writes one output file with a trailing newline, creating parent
// directories as needed.
func writePage(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
