package pipeline

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Highlighter turns code cell source into highlighted HTML.
type Highlighter interface {
	Highlight(code, language string) (string, error)
}

// ChromaHighlighter highlights with chroma using CSS classes, so the page
// needs the stylesheet returned by CSS.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// Unknown styles fall back to chroma's default.
func NewChromaHighlighter(style string) *ChromaHighlighter {
	if style == "" {
		style = DefaultHighlightStyle
	}
	return &ChromaHighlighter{
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Highlight returns the token spans for code. The caller supplies the
// surrounding pre and code elements.
func (h *ChromaHighlighter) Highlight(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", language, err)
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("formatting %s: %w", language, err)
	}
	return b.String(), nil
}

// CSS returns the stylesheet for the highlighter's classes.
func (h *ChromaHighlighter) CSS() (string, error) {
	var b strings.Builder
	if err := h.formatter.WriteCSS(&b, h.style); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return b.String(), nil
}

var _ Highlighter = (*ChromaHighlighter)(nil)
