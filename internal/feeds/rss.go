package feeds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSFeed renders an RSS or Atom feed as a Micron page.
type RSSFeed struct {
	FeedName string
	URL      string
	Limit    int
}

// Name implements Feed.
func (f *RSSFeed) Name() string { return f.FeedName }

// Fetch implements Feed.
func (f *RSSFeed) Fetch(ctx context.Context) (string, error) {
	parsed, err := gofeed.NewParser().ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch feed %s: %w", f.FeedName, err)
	}
	return renderRSS(parsed, f.Limit, time.Now()), nil
}

// renderRSS produces the feed page: feed title heading, fetch timestamp,
// then one linked entry per item up to limit.
func renderRSS(feed *gofeed.Feed, limit int, now time.Time) string {
	title := feed.Title
	if title == "" {
		title = "Feed"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("> `!%s`!", title))
	lines = append(lines, fmt.Sprintf("`!Fetched (UTC):` %s", FormatTime(now)))
	lines = append(lines, "-")

	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	if len(items) == 0 {
		lines = append(lines, "  No items found.")
		lines = append(lines, "-")
		return strings.Join(lines, "\n")
	}

	for _, item := range items {
		if item.Link != "" {
			lines = append(lines, fmt.Sprintf("  `_`[%s`%s]`_", item.Title, item.Link))
		} else {
			lines = append(lines, fmt.Sprintf("  `!%s`!", item.Title))
		}
		published := "N/A"
		if item.PublishedParsed != nil {
			published = FormatTime(*item.PublishedParsed)
		}
		lines = append(lines, fmt.Sprintf("  `!Published (UTC):` %s", published))
		lines = append(lines, "  -")
	}
	lines = append(lines, "-")

	return strings.Join(lines, "\n")
}
