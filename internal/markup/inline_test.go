package markup_test

import (
	"testing"

	"github.com/alnah/go-nb2html/internal/markup"
)

// ---------------------------------------------------------------------------
// TestInline - Bold, italic and link spans
// ---------------------------------------------------------------------------

func TestInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "just text", "just text"},
		{"bold", "a **b** c", "a <strong>b</strong> c"},
		{"italic", "a *b* c", "a <em>b</em> c"},
		{"bold then italic", "**x** and *y*", "<strong>x</strong> and <em>y</em>"},
		{"multiple bold", "**a** **b**", "<strong>a</strong> <strong>b</strong>"},
		{"non-greedy", "*a* b *c*", "<em>a</em> b <em>c</em>"},
		{"unterminated bold left literal", "**open", "**open"},
		{"unterminated italic left literal", "2 * 3", "2 * 3"},
		{"empty bold falls through to italic", "****", "<em>*</em>*"},
		{"empty italic not matched", "**", "**"},
		{"triple asterisks", "***a**", "<strong>*a</strong>"},
		{"link", "see [docs](https://x.io/a?b=1)", `see <a href="https://x.io/a?b=1">docs</a>`},
		{"link with bold label", "[**go**](u)", `<a href="u"><strong>go</strong></a>`},
		{"two links", "[a](1) [b](2)", `<a href="1">a</a> <a href="2">b</a>`},
		{"empty label", "[](u)", "[](u)"},
		{"empty target", "[a]()", "[a]()"},
		{"no paren", "[a] (u)", "[a] (u)"},
		{"unclosed target", "[a](u", "[a](u"},
		{"nested bracket in label", "[a[b](c)", `<a href="c">a[b</a>`},
		{"quote in target escaped", `[a](x"y)`, `<a href="x&quot;y">a</a>`},
		{"raw html passes through", "<kbd>Ctrl</kbd>", "<kbd>Ctrl</kbd>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := markup.Inline(tt.input)
			if got != tt.want {
				t.Errorf("Inline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBold_OnlyBold(t *testing.T) {
	t.Parallel()

	input := "**a** *b* [c](d)"
	want := "<strong>a</strong> *b* [c](d)"
	if got := markup.Bold(input); got != want {
		t.Errorf("Bold(%q) = %q, want %q", input, got, want)
	}
}

func TestInline_NewlineBreaksSpan(t *testing.T) {
	t.Parallel()

	input := "**a\nb**"
	if got := markup.Inline(input); got != input {
		t.Errorf("Inline(%q) = %q, want unchanged", input, got)
	}
}
