package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// QuakeFeed renders a USGS GeoJSON earthquake summary feed as a Micron
// page, optionally filtered by a minimum magnitude.
type QuakeFeed struct {
	URL          string
	MinMagnitude float64
	Limit        int
	Client       *http.Client
}

// quakeCollection is the subset of the USGS GeoJSON summary format the page
// needs.
type quakeCollection struct {
	Metadata struct {
		Title string `json:"title"`
	} `json:"metadata"`
	Features []quakeFeature `json:"features"`
}

type quakeFeature struct {
	Properties struct {
		Mag   float64 `json:"mag"`
		Place string  `json:"place"`
		Time  int64   `json:"time"` // milliseconds since epoch
	} `json:"properties"`
}

// Name implements Feed.
func (f *QuakeFeed) Name() string { return "quakes" }

// Fetch implements Feed.
func (f *QuakeFeed) Fetch(ctx context.Context) (string, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	var collection quakeCollection
	if err := getJSON(ctx, client, f.URL, &collection); err != nil {
		return "", fmt.Errorf("failed to fetch earthquake feed: %w", err)
	}
	return renderQuakes(&collection, f.MinMagnitude, f.Limit), nil
}

// renderQuakes produces the earthquake page: feed title heading followed by
// one magnitude/place/time entry per event.
func renderQuakes(collection *quakeCollection, minMagnitude float64, limit int) string {
	title := collection.Metadata.Title
	if title == "" {
		title = "Earthquakes"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("> `!%s`!", title))
	lines = append(lines, "-")

	listed := 0
	for _, feature := range collection.Features {
		if feature.Properties.Mag < minMagnitude {
			continue
		}
		if limit > 0 && listed >= limit {
			break
		}
		when := time.UnixMilli(feature.Properties.Time)
		lines = append(lines, fmt.Sprintf("  `!M%.1f`! %s", feature.Properties.Mag, feature.Properties.Place))
		lines = append(lines, fmt.Sprintf("  %s", FormatTime(when)))
		lines = append(lines, "  -")
		listed++
	}
	if listed == 0 {
		lines = append(lines, "  No earthquakes reported.")
	}
	lines = append(lines, "-")

	return strings.Join(lines, "\n")
}
