package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-nb2html/internal/markup"
)

// Markdown engine names.
const (
	EngineBasic    = "basic"
	EngineGoldmark = "goldmark"
)

// MarkdownEngine renders the source of a markdown cell.
type MarkdownEngine interface {
	RenderMarkdown(ctx context.Context, src string) (string, error)
}

// NewMarkdownEngine returns the engine registered under name. An empty name
// selects the basic engine. highlightStyle only affects goldmark.
func NewMarkdownEngine(name, highlightStyle string) (MarkdownEngine, error) {
	switch strings.ToLower(name) {
	case "", EngineBasic:
		return BasicEngine{}, nil
	case EngineGoldmark:
		return NewGoldmarkEngine(highlightStyle), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownEngine, name, EngineBasic, EngineGoldmark)
	}
}

// BasicEngine renders the small markdown subset of package markup.
type BasicEngine struct{}

// RenderMarkdown implements MarkdownEngine.
func (BasicEngine) RenderMarkdown(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return markup.Block(src), nil
}

// GoldmarkEngine renders GitHub-flavored markdown with goldmark. Raw HTML in
// cells is kept, matching BasicEngine.
type GoldmarkEngine struct {
	md goldmark.Markdown
}

// NewGoldmarkEngine creates a GoldmarkEngine. Fenced code is highlighted
// with CSS classes from the chroma style highlightStyle.
func NewGoldmarkEngine(highlightStyle string) *GoldmarkEngine {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &GoldmarkEngine{md: md}
}

// RenderMarkdown implements MarkdownEngine. goldmark has no context support,
// so conversion runs in a goroutine and the caller returns on cancellation.
func (g *GoldmarkEngine) RenderMarkdown(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(src), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownRender, err)}
			return
		}
		done <- result{html: strings.TrimRight(buf.String(), "\n")}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

var (
	_ MarkdownEngine = BasicEngine{}
	_ MarkdownEngine = (*GoldmarkEngine)(nil)
)
