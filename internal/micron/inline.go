package micron

import "strings"

// rewriteInline applies the three inline span rewrites to a plain text line.
// The order is a contract, not an implementation detail: links are resolved
// first because labels and URLs may contain asterisks, and bold before
// italic because a bold span's double asterisks would otherwise be consumed
// as two italic spans. Spans do not nest.
func rewriteInline(text string) string {
	return rewriteItalic(rewriteBold(rewriteLinks(text)))
}

// rewriteLinks rewrites [label](url) spans into `_`[label`url]`_ tokens.
// The label runs to the first ']' and the URL to the first ')'; both must
// be non-empty. Matching is leftmost and non-overlapping.
func rewriteLinks(text string) string {
	if !strings.Contains(text, "[") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		if text[i] != '[' {
			b.WriteByte(text[i])
			i++
			continue
		}
		label, url, next, ok := scanLink(text, i)
		if !ok {
			b.WriteByte('[')
			i++
			continue
		}
		b.WriteString("`_`[")
		b.WriteString(label)
		b.WriteString("`")
		b.WriteString(url)
		b.WriteString("]`_")
		i = next
	}
	return b.String()
}

// scanLink attempts to match a link span starting at the '[' at start.
// next is the index of the first byte after the span.
func scanLink(text string, start int) (label, url string, next int, ok bool) {
	labelStart := start + 1
	j := strings.IndexByte(text[labelStart:], ']')
	if j <= 0 {
		return "", "", 0, false
	}
	labelEnd := labelStart + j
	urlStart := labelEnd + 2
	if labelEnd+1 >= len(text) || text[labelEnd+1] != '(' {
		return "", "", 0, false
	}
	k := strings.IndexByte(text[urlStart:], ')')
	if k <= 0 {
		return "", "", 0, false
	}
	urlEnd := urlStart + k
	return text[labelStart:labelEnd], text[urlStart:urlEnd], urlEnd + 1, true
}

// rewriteBold rewrites **text** spans into `!text`! tokens. The span body
// is one or more non-asterisk characters.
func rewriteBold(text string) string {
	if !strings.Contains(text, "**") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		if text[i] != '*' || i+1 >= len(text) || text[i+1] != '*' {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i + 2
		k := j
		for k < len(text) && text[k] != '*' {
			k++
		}
		if k > j && k+1 < len(text) && text[k+1] == '*' {
			b.WriteString("`!")
			b.WriteString(text[j:k])
			b.WriteString("`!")
			i = k + 2
			continue
		}
		b.WriteByte('*')
		i++
	}
	return b.String()
}

// rewriteItalic rewrites *text* spans into `*text`* tokens. The span body
// is one or more non-asterisk characters. Bold spans must already be
// resolved when this runs.
func rewriteItalic(text string) string {
	if !strings.Contains(text, "*") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(text) {
		if text[i] != '*' {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		k := j
		for k < len(text) && text[k] != '*' {
			k++
		}
		if k > j && k < len(text) {
			b.WriteString("`*")
			b.WriteString(text[j:k])
			b.WriteString("`*")
			i = k + 1
			continue
		}
		b.WriteByte('*')
		i++
	}
	return b.String()
}
