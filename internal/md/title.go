package md

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Title returns the text of the first heading in the document, used for
// index listings when a page has no front-matter title. Returns "" when the
// document has no heading.
func Title(content string) string {
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = string(headingText(heading, source))
		return ast.WalkStop, nil
	})
	return title
}

// headingText concatenates the text segments of a heading's inline children.
func headingText(heading *ast.Heading, source []byte) []byte {
	var buf bytes.Buffer
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			continue
		}
		// Emphasis, links and code spans contribute their inner text.
		for inner := child.FirstChild(); inner != nil; inner = inner.NextSibling() {
			if t, ok := inner.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
	}
	return buf.Bytes()
}
