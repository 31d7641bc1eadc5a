package site

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayout is the UTC timestamp format used on generated pages.
const timestampLayout = "2006-01-02 15:04:05 MST"

// FormatTimestamp renders a time as a UTC timestamp line for Micron pages.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// RenderIndex produces the Micron index page listing every non-draft page
// with its link and modification time.
func RenderIndex(title string, pages []Page, now time.Time) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("> `!%s`!", title))
	lines = append(lines, fmt.Sprintf("`!Updated (UTC):` %s", FormatTimestamp(now)))
	lines = append(lines, "-")
	lines = append(lines, ">> `!Pages`!")

	listed := 0
	for _, page := range pages {
		if page.Draft {
			continue
		}
		lines = append(lines, fmt.Sprintf("  `_`[%s`/page/%s.mu]`_", page.Title, page.ID))
		if page.Summary != "" {
			lines = append(lines, fmt.Sprintf("  %s", page.Summary))
		}
		lines = append(lines, fmt.Sprintf("  `!Updated:` %s", FormatTimestamp(page.Modified)))
		lines = append(lines, "  -")
		listed++
	}
	if listed == 0 {
		lines = append(lines, "  No pages found.")
	}
	lines = append(lines, "-")

	return strings.Join(lines, "\n")
}
