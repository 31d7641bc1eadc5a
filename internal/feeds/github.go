package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nomad-mesh/micronpress/internal/log"
)

// Release is the subset of the GitHub release API response the page needs.
type Release struct {
	Name        string  `json:"name"`
	TagName     string  `json:"tag_name"`
	PublishedAt string  `json:"published_at"`
	Body        string  `json:"body"`
	Assets      []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// localAsset is a release asset mirrored into the node's files dir.
type localAsset struct {
	Name    string
	SizeStr string
}

// reticulumFilesBasePath is where NomadNet exposes the node's files dir.
const reticulumFilesBasePath = "/file/"

// GitHubFeed renders the latest release of a repository as a Micron page
// and mirrors the release assets into the local files dir so the node can
// serve them over the mesh.
type GitHubFeed struct {
	Owner    string
	Repo     string
	FilesDir string
	Client   *http.Client
	// BaseURL overrides the GitHub API host, used by tests.
	BaseURL string
}

// Name implements Feed.
func (f *GitHubFeed) Name() string { return "github" }

// Fetch implements Feed.
func (f *GitHubFeed) Fetch(ctx context.Context) (string, error) {
	base := f.BaseURL
	if base == "" {
		base = "https://api.github.com"
	}
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", base, f.Owner, f.Repo)

	var release Release
	if err := getJSON(ctx, f.client(), url, &release); err != nil {
		return "", fmt.Errorf("failed to fetch latest release for %s/%s: %w", f.Owner, f.Repo, err)
	}

	assets := f.mirrorAssets(ctx, release.Assets)
	return renderRelease(f.Repo, &release, assets), nil
}

func (f *GitHubFeed) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

// mirrorAssets downloads release assets that are not yet present locally.
// Download failures are logged and skipped; the page still lists the asset
// so the link becomes valid once a later fetch succeeds.
func (f *GitHubFeed) mirrorAssets(ctx context.Context, assets []Asset) []localAsset {
	logger := log.FromContext(ctx)

	var local []localAsset
	for _, asset := range assets {
		if asset.Name == "" || asset.BrowserDownloadURL == "" {
			continue
		}
		target := filepath.Join(f.FilesDir, asset.Name)
		if _, err := os.Stat(target); os.IsNotExist(err) {
			logger.Printf("Downloading %s...", asset.Name)
			if err := f.downloadAsset(ctx, asset.BrowserDownloadURL, target); err != nil {
				logger.Printf("Failed to download %s: %v", asset.Name, err)
			}
		}
		local = append(local, localAsset{Name: asset.Name, SizeStr: FormatSize(asset.Size)})
	}
	return local
}

func (f *GitHubFeed) downloadAsset(ctx context.Context, url, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create files dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	file, err := os.Create(target)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// renderRelease produces the release page: name and tag heading, published
// timestamp, the release notes rewritten line by line, and the asset table
// with local /file/ links.
func renderRelease(repo string, release *Release, assets []localAsset) string {
	name := release.Name
	if name == "" {
		name = "N/A"
	}
	tag := release.TagName
	if tag == "" {
		tag = "N/A"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("> `!Latest %s Release: %s (%s)`!", repo, name, tag))
	lines = append(lines, fmt.Sprintf("`!Published (UTC):` %s", FormatISOTimestamp(release.PublishedAt)))
	lines = append(lines, "-")
	lines = append(lines, ">> `!Release Notes`!")
	lines = append(lines, renderReleaseNotes(release.Body)...)
	lines = append(lines, "-")

	if len(assets) > 0 {
		lines = append(lines, ">> `!Assets (Local Links)`!")
		for _, asset := range assets {
			lines = append(lines, fmt.Sprintf("  `!File:` %s", asset.Name))
			lines = append(lines, fmt.Sprintf("  `!Size:` %s", asset.SizeStr))
			lines = append(lines, fmt.Sprintf("  `!Link:` `_`[%s`%s%s]`_", asset.Name, reticulumFilesBasePath, asset.Name))
			lines = append(lines, "  -")
		}
		lines = append(lines, "-")
	} else {
		lines = append(lines, ">> `!Assets`!")
		lines = append(lines, "  No assets found for this release.")
		lines = append(lines, "-")
	}

	return strings.Join(lines, "\n")
}

// renderReleaseNotes rewrites the markdown-ish release notes into indented
// Micron lines: headings become heading tokens, bullets become indented
// list items, everything else is indented plain text. Blank lines are
// dropped.
func renderReleaseNotes(body string) []string {
	if body == "" {
		return []string{"  No release notes provided."}
	}

	var lines []string
	for _, noteLine := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		stripped := strings.TrimSpace(noteLine)
		switch {
		case strings.HasPrefix(stripped, "#"):
			level := 0
			for level < len(stripped) && stripped[level] == '#' {
				level++
			}
			title := strings.TrimSpace(stripped[level:])
			lines = append(lines, fmt.Sprintf("%s `!%s`!", strings.Repeat(">", level), title))
		case strings.HasPrefix(stripped, "* ") || strings.HasPrefix(stripped, "- "):
			lines = append(lines, "  * "+stripped[2:])
		case stripped != "":
			lines = append(lines, "  "+stripped)
		}
	}
	if len(lines) == 0 {
		return []string{"  No release notes provided."}
	}
	return lines
}
