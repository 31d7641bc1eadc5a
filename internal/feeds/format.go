package feeds

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05 MST"

// FormatSize renders a byte count the way the release page shows asset
// sizes. Negative sizes (size unknown) render as "N/A".
func FormatSize(size int64) string {
	const (
		kb = int64(1024)
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case size < 0:
		return "N/A"
	case size < kb:
		return fmt.Sprintf("%d B", size)
	case size < mb:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kb))
	case size < gb:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(gb))
	}
}

// FormatISOTimestamp converts an ISO-8601 timestamp into the UTC page
// timestamp format. Empty input yields "N/A", unparseable input
// "Invalid Timestamp".
func FormatISOTimestamp(iso string) string {
	if iso == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "Invalid Timestamp"
	}
	return t.UTC().Format(timestampLayout)
}

// FormatTime renders a time in the UTC page timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
