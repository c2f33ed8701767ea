package markup_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-nb2html/internal/markup"
)

// ---------------------------------------------------------------------------
// TestBlock - Block rendering
// ---------------------------------------------------------------------------

func TestBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading paragraph list",
			input: "# Title\n\nSome **bold** text\n\n- item1\n- item2",
			want:  "<h1>Title</h1>\n<p>Some <strong>bold</strong> text</p>\n<ul>\n<li>item1</li>\n<li>item2</li>\n</ul>",
		},
		{
			name:  "fenced code escaped without inline markup",
			input: "```\nprint(1)\n```",
			want:  "<pre><code>print(1)</code></pre>",
		},
		{
			name:  "fence language tag ignored",
			input: "```python\nx = a < b and **c**\n\ny\n```",
			want:  "<pre><code>x = a &lt; b and **c**\n\ny</code></pre>",
		},
		{
			name:  "unterminated fence dropped",
			input: "before\n```\nlost",
			want:  "<p>before</p>",
		},
		{
			name:  "rules",
			input: "---\n ___ \n***",
			want:  "<hr>\n<hr>\n<hr>",
		},
		{
			name:  "rule does not close list",
			input: "- a\n---\n- b",
			want:  "<ul>\n<li>a</li>\n<hr>\n<li>b</li>\n</ul>",
		},
		{
			name:  "heading levels",
			input: "## Two\n###### Six\n######## Deep",
			want:  "<h2>Two</h2>\n<h6>Six</h6>\n<h6>Deep</h6>",
		},
		{
			name:  "heading keeps italics and links literal",
			input: "# A **b** *c* [d](e)",
			want:  "<h1>A <strong>b</strong> *c* [d](e)</h1>",
		},
		{
			name:  "heading without space",
			input: "#tag",
			want:  "<h1>tag</h1>",
		},
		{
			name:  "star bullets",
			input: "* one\n* two",
			want:  "<ul>\n<li>one</li>\n<li>two</li>\n</ul>",
		},
		{
			name:  "indented bullet",
			input: "  - nested",
			want:  "<ul>\n<li>nested</li>\n</ul>",
		},
		{
			name:  "blank line inside list keeps it open",
			input: "- a\n\n- b",
			want:  "<ul>\n<li>a</li>\n<li>b</li>\n</ul>",
		},
		{
			name:  "paragraph closes list",
			input: "- a\nafter",
			want:  "<ul>\n<li>a</li>\n</ul>\n<p>after</p>",
		},
		{
			name:  "list item inline markup",
			input: "- [link](u) and *em*",
			want:  "<ul>\n<li><a href=\"u\">link</a> and <em>em</em></li>\n</ul>",
		},
		{
			name:  "blank lines emit nothing",
			input: "a\n\n\nb",
			want:  "<p>a</p>\n<p>b</p>",
		},
		{
			name:  "crlf line endings",
			input: "# T\r\n\r\ntext\r\n",
			want:  "<h1>T</h1>\n<p>text</p>",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := markup.Block(tt.input)
			if got != tt.want {
				t.Errorf("Block(%q) =\n%s\nwant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlock_ParsesAsHTML(t *testing.T) {
	t.Parallel()

	input := "# Title\n\nSome **bold** text\n\n- item1\n- item2\n\nclosing"
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup.Block(input)), body)
	if err != nil {
		t.Fatalf("ParseFragment() unexpected error: %v", err)
	}

	var got []string
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			got = append(got, n.Data)
		}
	}
	want := []string{"h1", "p", "ul", "p"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("top-level elements mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestFirstHeading - Title discovery
// ---------------------------------------------------------------------------

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "# Sales Report\ntext", "Sales Report"},
		{"skips h2", "## Sub\n# Main", "Main"},
		{"strips bold", "# **Q3** results", "Q3 results"},
		{"ignores fenced", "```\n# comment\n```\n# Real", "Real"},
		{"none", "plain\n## two", ""},
		{"empty heading skipped", "#\n# Next", "Next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := markup.FirstHeading(tt.input); got != tt.want {
				t.Errorf("FirstHeading(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
