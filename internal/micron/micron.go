// Package micron converts a constrained subset of Markdown into Micron, the
// hypertext markup consumed by NomadNet terminal browsers.
//
// The conversion is a deterministic, single-pass fold over the document's
// lines: every input line produces exactly one output line, so the output
// always has the same line count as the input. The only context carried
// between lines is the code-fence toggle and the list tracking flags.
package micron

import (
	"fmt"
	"strings"
)

// Micron block tokens.
const (
	fenceOpen  = "`="
	fenceClose = "``"
	rule       = "-"
)

// engineState is the mutable context threaded through a single conversion.
// A fresh value is created per Convert call; conversions never share state,
// so concurrent Convert calls are safe.
type engineState struct {
	// inCodeBlock is true while inside an open fence. Lines in this state
	// bypass classification and pass through verbatim.
	inCodeBlock bool
	// inList is set by a list item and cleared only by a blank line. It
	// deliberately survives intervening plain lines; see the package tests
	// pinning this behavior.
	inList bool
	// listIndent is the indent of the most recently seen list item. This is
	// flat tracking, not a nesting stack: rendering derives purely from the
	// per-line indent, so the field is pure bookkeeping.
	listIndent int
}

// step maps one raw line to exactly one output line and the successor state.
func step(st engineState, raw string) (engineState, string) {
	// Inside an open fence only the closing marker is recognized; everything
	// else is opaque code content.
	if st.inCodeBlock {
		if strings.HasPrefix(raw, "```") {
			st.inCodeBlock = false
			return st, fenceClose
		}
		return st, raw
	}

	ln := classify(raw)
	switch ln.kind {
	case lineBlank:
		st.inList = false
		return st, ""
	case lineFence:
		st.inCodeBlock = true
		return st, fenceOpen
	case lineHeading:
		return st, strings.Repeat(">", ln.level) + " `!" + ln.text + "`!"
	case lineListItem:
		if !st.inList || ln.indent != st.listIndent {
			st.inList = true
			st.listIndent = ln.indent
		}
		return st, strings.Repeat("  ", ln.indent/2) + "* " + ln.text
	case lineRule:
		return st, rule
	default:
		return st, rewriteInline(raw)
	}
}

// Convert rewrites a markdown document into Micron. It is a total function:
// every input, however malformed, produces an output with the same line
// count. An unterminated code fence leaves the remainder of the document
// passing through verbatim; this is accepted, not corrected.
func Convert(document string) string {
	lines := strings.Split(document, "\n")
	out := make([]string, len(lines))
	var st engineState
	for i, ln := range lines {
		st, out[i] = step(st, ln)
	}
	return strings.Join(out, "\n")
}

// WithCacheDirective prefixes a finished page with the NomadNet cache
// control line, telling the client how many seconds the response may be
// cached. The directive is a control line, not page body, which is why it
// is not part of Convert.
func WithCacheDirective(body string, seconds int) string {
	return fmt.Sprintf("#!c=%d\n%s", seconds, body)
}
