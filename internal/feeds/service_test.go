package feeds

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nomad-mesh/micronpress/internal/site"
)

// stubFeed counts fetches so tests can observe cache behavior.
type stubFeed struct {
	name    string
	page    string
	err     error
	fetches int
}

func (f *stubFeed) Name() string { return f.name }

func (f *stubFeed) Fetch(ctx context.Context) (string, error) {
	f.fetches++
	return f.page, f.err
}

func newTestService(t *testing.T, feeds ...Feed) *Service {
	t.Helper()
	s := &Service{
		cache: &Cache{Dir: t.TempDir(), TTL: time.Hour},
		feeds: map[string]Feed{},
	}
	for _, feed := range feeds {
		s.register(feed)
	}
	return s
}

func TestService_PageCachesFetch(t *testing.T) {
	stub := &stubFeed{name: "news", page: "> `!News`!"}
	s := newTestService(t, stub)

	for i := 0; i < 3; i++ {
		page, err := s.Page(context.Background(), "news")
		if err != nil {
			t.Fatalf("Page() error = %v", err)
		}
		if page != "> `!News`!" {
			t.Errorf("Page() = %q", page)
		}
	}

	if stub.fetches != 1 {
		t.Errorf("feed fetched %d times, want 1", stub.fetches)
	}
}

func TestService_PageUnknownFeed(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Page(context.Background(), "nope"); err == nil {
		t.Error("Page() should fail for an unknown feed")
	}
}

func TestService_PageFetchError(t *testing.T) {
	stub := &stubFeed{name: "broken", err: errors.New("upstream down")}
	s := newTestService(t, stub)

	if _, err := s.Page(context.Background(), "broken"); err == nil {
		t.Error("Page() should surface fetch errors")
	}
}

func TestNewService_RegistersConfiguredFeeds(t *testing.T) {
	cfg := &site.Config{}
	cfg.Cache.Dir = t.TempDir()
	cfg.Feeds.GitHub = &site.GitHubFeedConfig{Owner: "mesh-tools", Repo: "meshctl"}
	cfg.Feeds.RSS = []site.RSSFeedConfig{
		{Name: "news", URL: "https://example.org/rss"},
	}
	cfg.Feeds.Quakes = &site.QuakeFeedConfig{URL: "https://example.org/quakes"}

	s := NewService(cfg)

	got := s.Names()
	want := []string{"github", "news", "quakes"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
