package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/alnah/go-nb2html/internal/notebook"
)

// chartMargin is the layout margin applied to extracted charts.
const chartMargin = `{"l":50,"r":30,"t":80,"b":50}`

// ChartLabel names an extracted chart. Labels are matched to charts by
// position, so adding or removing a chart output shifts every later label.
type ChartLabel struct {
	Name        string
	Description string
}

// LabelFor returns labels[i], or chart_<i+1> / "Chart <i+1>" when the list
// is too short.
func LabelFor(labels []ChartLabel, i int) ChartLabel {
	if i < len(labels) {
		return labels[i]
	}
	n := strconv.Itoa(i + 1)
	return ChartLabel{Name: "chart_" + n, Description: "Chart " + n}
}

// Figure is one chart payload found in a notebook.
type Figure struct {
	Cell   int    // index of the code cell in the document
	Source string // source of that cell
	JSON   string // payload as stored in the notebook
}

// FindFigures returns the chart payloads of display_data outputs in code
// cells, in document order. execute_result charts are not extracted.
func FindFigures(doc *notebook.Document) []Figure {
	var figs []Figure
	for i, cell := range doc.Cells {
		if cell.Type != notebook.CellCode {
			continue
		}
		for _, out := range cell.Outputs {
			if out.Type != notebook.OutputDisplayData {
				continue
			}
			if p, ok := out.Data.Lookup(notebook.MIMEPlotly); ok {
				figs = append(figs, Figure{Cell: i, Source: cell.Source, JSON: p.JSON()})
			}
		}
	}
	return figs
}

// Chart is one standalone chart page.
type Chart struct {
	Index int
	ChartLabel
	Figure Figure
	HTML   string
}

// chartPage feeds the chart template.
type chartPage struct {
	Title     string
	PlotlyURL string
	Figure    template.JS
}

// ChartExtractor renders figures as standalone full-window pages.
type ChartExtractor struct {
	tmpl      *template.Template
	plotlyURL string
}

// NewChartExtractor parses the chart template.
func NewChartExtractor(tmplContent, plotlyURL string) (*ChartExtractor, error) {
	tmpl, err := template.New("chart").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: chart: %v", ErrTemplateParse, err)
	}
	return &ChartExtractor{tmpl: tmpl, plotlyURL: plotlyURL}, nil
}

// Extract renders one page per figure in doc, labelled by position.
func (e *ChartExtractor) Extract(ctx context.Context, doc *notebook.Document, labels []ChartLabel) ([]Chart, error) {
	figs := FindFigures(doc)
	charts := make([]Chart, 0, len(figs))
	for i, fig := range figs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		label := LabelFor(labels, i)
		page, err := e.render(label, fig)
		if err != nil {
			return nil, err
		}
		charts = append(charts, Chart{Index: i, ChartLabel: label, Figure: fig, HTML: page})
	}
	return charts, nil
}

func (e *ChartExtractor) render(label ChartLabel, fig Figure) (string, error) {
	data := chartPage{
		Title:     label.Description,
		PlotlyURL: e.plotlyURL,
		Figure:    template.JS(CompactJSON(FitLayout(fig.JSON))), // #nosec G203 -- JSON value, "</" escaped
	}
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: chart %q: %v", ErrTemplateRender, label.Name, err)
	}
	return buf.String(), nil
}

// FitLayout makes a figure fill its window: when the figure has a layout
// object, autosize is turned on and the margins are fixed. Other figures
// are returned unchanged.
func FitLayout(figure string) string {
	if !gjson.Get(figure, "layout").IsObject() {
		return figure
	}
	out, err := sjson.Set(figure, "layout.autosize", true)
	if err != nil {
		return figure
	}
	out, err = sjson.SetRaw(out, "layout.margin", chartMargin)
	if err != nil {
		return figure
	}
	return out
}
