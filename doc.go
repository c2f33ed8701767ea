// Package nb2html converts notebooks to self-contained HTML pages and
// extracts their Plotly charts as standalone pages.
//
// # Quick Start
//
// Load a notebook, create a converter, convert, and close when done:
//
//	nb, err := nb2html.LoadNotebook("analysis.ipynb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv, err := nb2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, nb2html.Input{Notebook: nb})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("analysis.html", result.HTML, 0o644)
//
// # Rendering
//
// Cells are rendered in document order:
//
//  1. Markdown cells through the basic engine (headings, rules, lists,
//     fenced code, bold, italics, links) or, with WithMarkdownEngine, goldmark
//  2. Code cells as escaped input followed by their outputs: stream text,
//     rich results by MIME priority (Plotly chart, HTML, plain text) and
//     error tracebacks without terminal colors
//  3. The page template around the cells, with the stylesheet inlined
//
// Rendering is deterministic: chart containers are numbered plotly-chart-1,
// plotly-chart-2 and so on, per document. Malformed markup never fails a
// conversion; it renders on a best-effort basis.
//
// HTML outputs are embedded unchanged because notebook content is trusted.
// Use WithHTMLSanitizer when it is not.
//
// # Charts
//
// ExtractCharts returns one standalone page per display_data chart output.
// Labels are assigned by position; charts beyond the label list are named
// chart_<n>. Adding or removing a chart output in the notebook shifts every
// later label.
//
//	charts, err := conv.ExtractCharts(ctx, nb2html.ChartInput{
//	    Notebook: nb,
//	    Labels:   []nb2html.ChartLabel{{Name: "revenue", Description: "Revenue by month"}},
//	})
//
// # PDF
//
// Set Input.PDF to also print the page with headless Chrome (go-rod). Rod
// downloads a managed Chromium on first use. In containers and CI set
// ROD_NO_SANDBOX=1; ROD_BROWSER_BIN selects a local Chrome binary.
package nb2html
