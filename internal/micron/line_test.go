package micron

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want line
	}{
		{"empty", "", line{kind: lineBlank}},
		{"whitespace only", "   \t ", line{kind: lineBlank}},
		{"fence", "```", line{kind: lineFence}},
		{"fence with language", "```go", line{kind: lineFence}},
		{"heading 1", "# Hello", line{kind: lineHeading, level: 1, text: "Hello"}},
		{"heading 6", "###### Deep", line{kind: lineHeading, level: 6, text: "Deep"}},
		{"heading 7 hashes is plain", "####### Too deep", line{kind: linePlain}},
		{"heading without space is plain", "#Hello", line{kind: linePlain}},
		{"heading without text is plain", "# ", line{kind: linePlain}},
		{"hash only is plain", "#", line{kind: linePlain}},
		{"heading extra spaces", "##   Title", line{kind: lineHeading, level: 2, text: "Title"}},
		{"star list item", "* a", line{kind: lineListItem, indent: 0, text: "a"}},
		{"dash list item", "- a", line{kind: lineListItem, indent: 0, text: "a"}},
		{"indented list item", "  * b", line{kind: lineListItem, indent: 2, text: "b"}},
		{"deeply indented list item", "    * c", line{kind: lineListItem, indent: 4, text: "c"}},
		{"bullet without space is plain", "*bold start", line{kind: linePlain}},
		{"bullet without text is plain", "* ", line{kind: linePlain}},
		{"rule dashes", "---", line{kind: lineRule}},
		{"rule stars", "***", line{kind: lineRule}},
		{"rule underscores", "___", line{kind: lineRule}},
		{"rule long", "----------", line{kind: lineRule}},
		{"rule mixed characters", "-*_", line{kind: lineRule}},
		{"two dashes is plain", "--", line{kind: linePlain}},
		{"dashes with trailing space is plain", "--- ", line{kind: linePlain}},
		{"plain text", "just some text", line{kind: linePlain}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.raw)
			if got != tt.want {
				t.Errorf("classify(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClassify_SpacedDashesAreListItem(t *testing.T) {
	// "- - -" parses as a list item ("- " bullet, "- -" text), not a rule.
	// List items take precedence over horizontal rules.
	got := classify("- - -")
	want := line{kind: lineListItem, indent: 0, text: "- -"}
	if got != want {
		t.Errorf("classify(%q) = %+v, want %+v", "- - -", got, want)
	}
}
