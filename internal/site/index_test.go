package site

import (
	"strings"
	"testing"
	"time"
)

func TestRenderIndex(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	modified := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)

	pages := []Page{
		{ID: "about", Title: "About", Modified: modified},
		{ID: "blog/first", Title: "First Post", Summary: "hello world", Modified: modified},
		{ID: "wip", Title: "WIP", Draft: true, Modified: modified},
	}

	got := RenderIndex("Test Node", pages, now)

	want := strings.Join([]string{
		"> `!Test Node`!",
		"`!Updated (UTC):` 2026-08-23 10:30:00 UTC",
		"-",
		">> `!Pages`!",
		"  `_`[About`/page/about.mu]`_",
		"  `!Updated:` 2026-08-20 18:00:00 UTC",
		"  -",
		"  `_`[First Post`/page/blog/first.mu]`_",
		"  hello world",
		"  `!Updated:` 2026-08-20 18:00:00 UTC",
		"  -",
		"-",
	}, "\n")

	if got != want {
		t.Errorf("RenderIndex() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIndex_Empty(t *testing.T) {
	got := RenderIndex("Empty Node", nil, time.Unix(0, 0))
	if !strings.Contains(got, "No pages found.") {
		t.Errorf("RenderIndex() = %q, want a 'No pages found.' line", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2026, 1, 2, 13, 4, 5, 0, loc)
	if got := FormatTimestamp(ts); got != "2026-01-02 12:04:05 UTC" {
		t.Errorf("FormatTimestamp() = %q, want UTC-normalized output", got)
	}
}
