package pipeline

import (
	"context"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-nb2html/internal/htmlutil"
)

// CSSInjector adds a stylesheet to an HTML page.
type CSSInjector interface {
	InjectCSS(ctx context.Context, page, css string) string
}

// CSSInjection inserts CSS as a <style> element.
type CSSInjection struct{}

// InjectCSS places a <style> element before </head>, else right after the
// <body> start tag, else at the start of page. Empty css leaves page as is.
func (CSSInjection) InjectCSS(ctx context.Context, page, css string) string {
	if css == "" || ctx.Err() != nil {
		return page
	}
	style := htmlutil.Wrap(atom.Style, htmlutil.ScriptSafe(css))

	lower := strings.ToLower(page)
	if i := strings.Index(lower, "</head>"); i >= 0 {
		return page[:i] + style + "\n" + page[i:]
	}
	if i := afterStartTag(page, lower, "<body"); i >= 0 {
		return page[:i] + style + page[i:]
	}
	return style + page
}

// afterStartTag returns the index just past the start tag prefix, or -1.
func afterStartTag(page, lower, prefix string) int {
	i := strings.Index(lower, prefix)
	if i < 0 {
		return -1
	}
	end := strings.IndexByte(page[i:], '>')
	if end < 0 {
		return -1
	}
	return i + end + 1
}

var _ CSSInjector = CSSInjection{}
