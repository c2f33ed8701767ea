package pipeline

import (
	"strconv"
	"strings"

	"github.com/tidwall/pretty"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-nb2html/internal/htmlutil"
	"github.com/alnah/go-nb2html/internal/notebook"
)

// CSS classes of output fragments.
const (
	ClassStream = "output-stream"
	ClassHTML   = "output-html"
	ClassText   = "output-text"
	ClassError  = "output-error"
	ClassChart  = "plotly-chart"
)

// ChartIDs numbers chart containers within one document render.
// The zero value is ready to use; use a fresh value per document.
type ChartIDs struct {
	n int
}

// Next returns the next container id: plotly-chart-1, plotly-chart-2, ...
func (c *ChartIDs) Next() string {
	c.n++
	return "plotly-chart-" + strconv.Itoa(c.n)
}

// Count returns how many ids were handed out.
func (c *ChartIDs) Count() int {
	return c.n
}

// HTMLSanitizer cleans text/html payloads.
type HTMLSanitizer interface {
	Sanitize(html string) string
}

// OutputRenderer renders code cell outputs.
type OutputRenderer struct {
	// Sanitizer, when set, filters text/html payloads. Without it they are
	// embedded unchanged: notebook content is trusted.
	Sanitizer HTMLSanitizer
}

// Render returns the fragment for one output, or "" for output types and
// payloads it does not display.
func (r *OutputRenderer) Render(out notebook.Output, ids *ChartIDs) string {
	switch out.Type {
	case notebook.OutputStream:
		return pre(ClassStream, out.Text)
	case notebook.OutputExecuteResult, notebook.OutputDisplayData:
		return r.renderRich(out.Data, ids)
	case notebook.OutputError:
		return pre(ClassError, StripANSI(strings.Join(out.Traceback, "\n")))
	default:
		return ""
	}
}

// renderRich picks the first available MIME type: chart, HTML, plain text.
func (r *OutputRenderer) renderRich(data notebook.Bundle, ids *ChartIDs) string {
	if p, ok := data.Lookup(notebook.MIMEPlotly); ok {
		return chart(ids.Next(), p.JSON())
	}
	if p, ok := data.Lookup(notebook.MIMEHTML); ok {
		content := p.Text()
		if r.Sanitizer != nil {
			content = r.Sanitizer.Sanitize(content)
		}
		return htmlutil.WrapClass(atom.Div, ClassHTML, content)
	}
	if p, ok := data.Lookup(notebook.MIMEPlain); ok {
		return pre(ClassText, p.Text())
	}
	return ""
}

func pre(class, text string) string {
	return htmlutil.WrapClass(atom.Pre, class, htmlutil.Escape(text))
}

// chart returns a container div and the script that plots figure into it.
// The figure JSON is compacted and embedded as a script value, not escaped.
func chart(id, figure string) string {
	var b strings.Builder
	b.WriteString(htmlutil.OpenAttrs(atom.Div, "id", id, "class", ClassChart))
	b.WriteString(htmlutil.Close(atom.Div))
	b.WriteString("\n")
	b.WriteString(htmlutil.Open(atom.Script))
	b.WriteString("(function() { var data = ")
	b.WriteString(CompactJSON(figure))
	b.WriteString("; Plotly.newPlot(")
	b.WriteString(strconv.Quote(id))
	b.WriteString(", data.data, data.layout, {responsive: true, displaylogo: false}); })();")
	b.WriteString(htmlutil.Close(atom.Script))
	return b.String()
}

// CompactJSON strips insignificant whitespace from a JSON value and escapes
// "</" so it can sit inside a script element.
func CompactJSON(raw string) string {
	return htmlutil.ScriptSafe(string(pretty.Ugly([]byte(raw))))
}
