package micron

import "strings"

// lineKind is the structural category of a single raw markdown line.
// Categories are mutually exclusive; classify returns the first match in a
// fixed precedence order (blank, fence, heading, list item, rule, plain).
type lineKind int

const (
	lineBlank lineKind = iota
	lineFence
	lineHeading
	lineListItem
	lineRule
	linePlain
)

// line is a classified input line. level is only set for headings, indent
// and text only for headings and list items.
type line struct {
	kind   lineKind
	level  int
	indent int
	text   string
}

// classify determines the line kind of a raw line outside of code fences.
// Fence handling for lines inside an open fence happens in step, before
// classification.
func classify(raw string) line {
	if strings.TrimSpace(raw) == "" {
		return line{kind: lineBlank}
	}
	if strings.HasPrefix(raw, "```") {
		return line{kind: lineFence}
	}
	if level, text, ok := parseHeading(raw); ok {
		return line{kind: lineHeading, level: level, text: text}
	}
	if indent, text, ok := parseListItem(raw); ok {
		return line{kind: lineListItem, indent: indent, text: text}
	}
	if isRule(raw) {
		return line{kind: lineRule}
	}
	return line{kind: linePlain}
}

// parseHeading matches one to six leading '#' characters followed by at
// least one whitespace character and non-empty text. Seven or more '#'
// characters never match: the separator position would have to hold a '#'.
func parseHeading(raw string) (level int, text string, ok bool) {
	n := 0
	for n < len(raw) && raw[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return 0, "", false
	}
	rest := raw[n:]
	text = strings.TrimLeft(rest, " \t")
	if len(text) == len(rest) || text == "" {
		return 0, "", false
	}
	return n, text, true
}

// parseListItem matches optional leading whitespace, a '*' or '-' bullet,
// at least one whitespace character, and non-empty text. indent is the
// count of leading whitespace characters.
func parseListItem(raw string) (indent int, text string, ok bool) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
		i++
	}
	if i >= len(raw) || (raw[i] != '*' && raw[i] != '-') {
		return 0, "", false
	}
	rest := raw[i+1:]
	text = strings.TrimLeft(rest, " \t")
	if len(text) == len(rest) || text == "" {
		return 0, "", false
	}
	return i, text, true
}

// isRule matches a line consisting solely of three or more '-', '*' or '_'
// characters.
func isRule(raw string) bool {
	if len(raw) < 3 {
		return false
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '-', '*', '_':
		default:
			return false
		}
	}
	return true
}
