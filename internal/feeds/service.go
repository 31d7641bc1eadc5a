// Package feeds fetches remote data sources (GitHub releases, RSS feeds,
// earthquake summaries) and renders each as a Micron page, with an on-disk
// cache so a mesh node does not hammer upstream APIs.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/nomad-mesh/micronpress/internal/log"
	"github.com/nomad-mesh/micronpress/internal/site"
)

// Feed renders one remote source as a Micron page.
type Feed interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

// Service resolves feed names to fetchers and serves rendered pages through
// the on-disk cache.
type Service struct {
	cache *Cache
	feeds map[string]Feed
}

// NewService wires up the feeds configured for the node.
func NewService(cfg *site.Config) *Service {
	s := &Service{
		cache: &Cache{Dir: cfg.Cache.Dir, TTL: cfg.FeedTTL()},
		feeds: map[string]Feed{},
	}
	if gh := cfg.Feeds.GitHub; gh != nil {
		s.register(&GitHubFeed{Owner: gh.Owner, Repo: gh.Repo, FilesDir: cfg.Site.FilesDir})
	}
	for _, rss := range cfg.Feeds.RSS {
		s.register(&RSSFeed{FeedName: rss.Name, URL: rss.URL, Limit: rss.Limit})
	}
	if q := cfg.Feeds.Quakes; q != nil {
		s.register(&QuakeFeed{URL: q.URL, MinMagnitude: q.MinMagnitude, Limit: q.Limit})
	}
	return s
}

func (s *Service) register(feed Feed) {
	s.feeds[feed.Name()] = feed
}

// Names returns the configured feed names, sorted.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.feeds))
	for name := range s.feeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Page returns the rendered Micron page for the named feed, serving from
// the disk cache while the entry is fresh.
func (s *Service) Page(ctx context.Context, name string) (string, error) {
	feed, ok := s.feeds[name]
	if !ok {
		return "", fmt.Errorf("unknown feed: %s", name)
	}

	if page, ok := s.cache.Get(name); ok {
		return page, nil
	}

	page, err := feed.Fetch(ctx)
	if err != nil {
		return "", err
	}
	if err := s.cache.Put(name, page); err != nil {
		// A broken cache should not take the page down.
		log.FromContext(ctx).Printf("Failed to cache feed %s: %v", name, err)
	}
	return page, nil
}

// getJSON performs a context-bound GET and decodes the JSON response body.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode JSON from %s: %w", url, err)
	}
	return nil
}
