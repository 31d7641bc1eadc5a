package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/nomad-mesh/micronpress/internal/md"
)

// Page is one markdown source document from the content tree.
type Page struct {
	// ID is the content-relative path without extension; it doubles as the
	// request identifier, so /page/<ID>.mu serves this page.
	ID       string
	Title    string
	Summary  string
	Date     time.Time
	Draft    bool
	Modified time.Time
	// Body is the markdown source with front matter stripped.
	Body string
}

// pageMatter is the recognized front-matter envelope. Unknown keys are
// ignored.
type pageMatter struct {
	Title   string    `yaml:"title"`
	Summary string    `yaml:"summary"`
	Date    time.Time `yaml:"date"`
	Draft   bool      `yaml:"draft"`
}

// LoadPages walks the content directory and returns every markdown page,
// sorted by ID. A page whose source cannot be read or parsed is replaced by
// a visible error page rather than failing the walk; only a broken walk
// itself (e.g. missing content dir) is an error.
func LoadPages(contentDir string) ([]Page, error) {
	var pages []Page

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(filepath.ToSlash(rel), ".md")

		modified := time.Now()
		if info, err := d.Info(); err == nil {
			modified = info.ModTime()
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			pages = append(pages, errorPage(id, modified, err))
			return nil
		}

		page, err := parsePage(id, raw, modified)
		if err != nil {
			pages = append(pages, errorPage(id, modified, err))
			return nil
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content dir %s: %w", contentDir, err)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })
	return pages, nil
}

// parsePage strips the optional front matter and fills page metadata,
// falling back to the first markdown heading and then to the ID for the
// title.
func parsePage(id string, raw []byte, modified time.Time) (Page, error) {
	var matter pageMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse front matter: %w", err)
	}

	page := Page{
		ID:       id,
		Title:    matter.Title,
		Summary:  matter.Summary,
		Date:     matter.Date,
		Draft:    matter.Draft,
		Modified: modified,
		Body:     string(body),
	}
	if page.Title == "" {
		page.Title = md.Title(page.Body)
	}
	if page.Title == "" {
		page.Title = id
	}
	return page, nil
}

// errorPage substitutes a visible error block for a page that could not be
// loaded. The conversion engine never sees the failure.
func errorPage(id string, modified time.Time, cause error) Page {
	body := fmt.Sprintf("# Error\n\nFailed to load page %s.\n\n```\n%v\n```", id, cause)
	return Page{
		ID:       id,
		Title:    id,
		Modified: modified,
		Body:     body,
	}
}

// FindPage loads a single page by ID. Missing pages return os.ErrNotExist.
func FindPage(contentDir, id string) (Page, error) {
	pages, err := LoadPages(contentDir)
	if err != nil {
		return Page{}, err
	}
	for _, p := range pages {
		if p.ID == id {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("page %s: %w", id, os.ErrNotExist)
}
