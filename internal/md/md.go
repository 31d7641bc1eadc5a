// Package md renders markdown with goldmark for the HTML mirror of the page
// tree and extracts document metadata from the parsed AST. The Micron
// conversion itself lives in internal/micron; it is line-oriented and does
// not go through an AST.
package md

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Render converts markdown content to an HTML string using goldmark.
func Render(content string) (string, error) {
	gm := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)
	var buf bytes.Buffer
	if err := gm.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
