// Package site loads node configuration and turns a directory of markdown
// content into the Micron page tree served by a NomadNet node.
package site

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed config/default_site.yaml
var defaultSiteYAML []byte

// Config is the full node configuration parsed from YAML.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Cache  CacheConfig  `yaml:"cache"`
	Feeds  FeedsConfig  `yaml:"feeds"`
	Status StatusConfig `yaml:"status"`
}

// SiteConfig describes the content tree and its outputs.
type SiteConfig struct {
	Title      string `yaml:"title"`
	ContentDir string `yaml:"content_dir"`
	OutputDir  string `yaml:"output_dir"`
	// FilesDir holds downloaded release assets, exposed under /file/.
	FilesDir string `yaml:"files_dir"`
}

// CacheConfig controls the page cache directive and the feed cache.
type CacheConfig struct {
	PageSeconds int    `yaml:"page_seconds"`
	FeedSeconds int    `yaml:"feed_seconds"`
	Dir         string `yaml:"dir"`
}

// FeedsConfig lists the remote sources rendered as feed pages. All entries
// are optional.
type FeedsConfig struct {
	GitHub *GitHubFeedConfig `yaml:"github,omitempty"`
	RSS    []RSSFeedConfig   `yaml:"rss,omitempty"`
	Quakes *QuakeFeedConfig  `yaml:"quakes,omitempty"`
}

// GitHubFeedConfig identifies a repository whose latest release is rendered
// as a page, with assets mirrored into the files dir.
type GitHubFeedConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
}

// RSSFeedConfig is one RSS/Atom feed page.
type RSSFeedConfig struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Limit int    `yaml:"limit"`
}

// QuakeFeedConfig is a USGS GeoJSON earthquake summary feed page.
type QuakeFeedConfig struct {
	URL          string  `yaml:"url"`
	MinMagnitude float64 `yaml:"min_magnitude"`
	Limit        int     `yaml:"limit"`
}

// StatusConfig is the external status command shown on /status.mu.
type StatusConfig struct {
	Command        string `yaml:"command"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// FeedTTL returns the feed cache lifetime as a duration.
func (c *Config) FeedTTL() time.Duration {
	return time.Duration(c.Cache.FeedSeconds) * time.Second
}

// StatusTimeout returns the status command timeout as a duration.
func (c *Config) StatusTimeout() time.Duration {
	return time.Duration(c.Status.TimeoutSeconds) * time.Second
}

// LoadConfig loads the node configuration from a file path. If path is
// empty, the embedded default configuration is used. The returned config is
// validated and has defaults applied.
func LoadConfig(path string) (*Config, error) {
	var data []byte
	var err error

	if path == "" {
		data = defaultSiteYAML
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the same values the embedded
// default config carries, so a minimal user config stays valid.
func applyDefaults(cfg *Config) {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Micron Node"
	}
	if cfg.Site.ContentDir == "" {
		cfg.Site.ContentDir = "content"
	}
	if cfg.Site.OutputDir == "" {
		cfg.Site.OutputDir = "pages"
	}
	if cfg.Site.FilesDir == "" {
		cfg.Site.FilesDir = "files"
	}
	if cfg.Cache.PageSeconds == 0 {
		cfg.Cache.PageSeconds = 3600
	}
	if cfg.Cache.FeedSeconds == 0 {
		cfg.Cache.FeedSeconds = 1800
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = ".cache"
	}
	if cfg.Status.TimeoutSeconds == 0 {
		cfg.Status.TimeoutSeconds = 10
	}
	for i := range cfg.Feeds.RSS {
		if cfg.Feeds.RSS[i].Limit == 0 {
			cfg.Feeds.RSS[i].Limit = 10
		}
	}
	if cfg.Feeds.Quakes != nil && cfg.Feeds.Quakes.Limit == 0 {
		cfg.Feeds.Quakes.Limit = 10
	}
}

// validateConfig rejects configurations that would produce broken pages or
// unroutable feed names.
func validateConfig(cfg *Config) error {
	if cfg.Cache.PageSeconds < 0 {
		return fmt.Errorf("cache.page_seconds cannot be negative")
	}
	if cfg.Cache.FeedSeconds < 0 {
		return fmt.Errorf("cache.feed_seconds cannot be negative")
	}
	if cfg.Status.TimeoutSeconds < 0 {
		return fmt.Errorf("status.timeout_seconds cannot be negative")
	}

	if gh := cfg.Feeds.GitHub; gh != nil {
		if gh.Owner == "" || gh.Repo == "" {
			return fmt.Errorf("feeds.github requires both owner and repo")
		}
	}

	seen := map[string]bool{}
	for _, rss := range cfg.Feeds.RSS {
		if rss.Name == "" {
			return fmt.Errorf("feeds.rss entries require a name")
		}
		if strings.ContainsAny(rss.Name, "/\\ ") {
			return fmt.Errorf("feeds.rss name %q must not contain slashes or spaces", rss.Name)
		}
		if rss.URL == "" {
			return fmt.Errorf("feeds.rss entry %q requires a url", rss.Name)
		}
		if seen[rss.Name] {
			return fmt.Errorf("duplicate feeds.rss name %q", rss.Name)
		}
		seen[rss.Name] = true
	}

	if q := cfg.Feeds.Quakes; q != nil && q.URL == "" {
		return fmt.Errorf("feeds.quakes requires a url")
	}

	return nil
}
