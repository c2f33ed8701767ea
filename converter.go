package nb2html

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-nb2html/internal/assets"
	"github.com/alnah/go-nb2html/internal/dateutil"
	"github.com/alnah/go-nb2html/internal/fileutil"
	"github.com/alnah/go-nb2html/internal/markup"
	"github.com/alnah/go-nb2html/internal/notebook"
	"github.com/alnah/go-nb2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownEngine = pipeline.BasicEngine{}
	_ pipeline.MarkdownEngine = (*pipeline.GoldmarkEngine)(nil)
	_ pipeline.Highlighter    = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.HTMLSanitizer  = (*pipeline.PolicySanitizer)(nil)
	_ pipeline.CSSInjector    = pipeline.CSSInjection{}
	_ PDFRenderer             = (*rodRenderer)(nil)
)

// fallbackTitle is the page title when nothing better is known.
const fallbackTitle = "Notebook"

// Converter renders notebooks to HTML pages and chart pages.
// Create with NewConverter, and Close when done. Convert and ExtractCharts
// may run concurrently on the same notebook; parallel Convert calls with PDF
// output serialize on the browser, so use a ConverterPool for batches.
type Converter struct {
	cfg       converterConfig
	loader    assets.AssetLoader
	css       string
	cells     *pipeline.CellRenderer
	page      *pipeline.PageAssembler
	chartTmpl string
	charts    *pipeline.ChartExtractor
	injector  pipeline.CSSInjector
	pdf       PDFRenderer
	now       func() time.Time
}

// NewConverter creates a Converter. Options select the style, assets,
// markdown engine, highlighting and sanitizing.
// Returns error if asset loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:      converterConfig{timeout: defaultTimeout},
		loader:   assets.NewEmbeddedLoader(),
		injector: pipeline.CSSInjection{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.loader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.buildRenderers(); err != nil {
		return nil, err
	}
	if err := c.loadTemplates(); err != nil {
		return nil, err
	}

	if c.pdf == nil {
		c.pdf = newRodRenderer(c.cfg.timeout)
	}
	return c, nil
}

// buildRenderers wires the markdown engine, highlighter and sanitizer, and
// appends the highlight stylesheet when one of them emits chroma classes.
func (c *Converter) buildRenderers() error {
	engine, err := pipeline.NewMarkdownEngine(c.cfg.engine, c.cfg.highlightStyle)
	if err != nil {
		return err
	}

	outputs := &pipeline.OutputRenderer{}
	if c.cfg.sanitize {
		outputs.Sanitizer = pipeline.NewPolicySanitizer()
	}
	c.cells = &pipeline.CellRenderer{Markdown: engine, Outputs: outputs}

	chroma := pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
	if c.cfg.highlight {
		c.cells.Highlighter = chroma
	}
	if c.cfg.highlight || strings.EqualFold(c.cfg.engine, pipeline.EngineGoldmark) {
		css, err := chroma.CSS()
		if err != nil {
			return err
		}
		c.css += "\n" + css
	}
	return nil
}

func (c *Converter) loadTemplates() error {
	ts, err := c.loader.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		return fmt.Errorf("loading template set: %w", err)
	}
	if c.page, err = pipeline.NewPageAssembler(ts.Page); err != nil {
		return err
	}
	c.chartTmpl = ts.Chart
	c.charts, err = pipeline.NewChartExtractor(ts.Chart, DefaultPlotlyURL)
	return err
}

// Convert renders the notebook to a page and, when input.PDF is set, prints
// it. Content problems never fail a conversion; errors come from invalid
// input, cancellation, templates or the browser.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Notebook == nil {
		return nil, ErrEmptyNotebook
	}
	if err := input.Page.Validate(); err != nil {
		return nil, err
	}
	page := input.Page
	if page == nil {
		page = &PageSettings{}
	}

	cells := *c.cells
	cells.Language = firstNonEmpty(input.Notebook.Metadata.Language, page.Language)
	body, ids, err := pipeline.RenderCells(ctx, &cells, input.Notebook)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	date, err := dateutil.Resolve(page.Date, c.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	data := &pipeline.PageData{
		Title:     pageTitle(input, page),
		Heading:   page.Heading,
		Subtitle:  page.Subtitle,
		Date:      date,
		PlotlyURL: firstNonEmpty(page.PlotlyURL, DefaultPlotlyURL),
		Cells:     template.HTML(body), // #nosec G203 -- fragments are built escaped
	}
	if page.BackLink != nil {
		data.BackLink = &pipeline.Link{Label: page.BackLink.Label, URL: page.BackLink.URL}
	}
	htmlContent, err := c.page.Assemble(ctx, data)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	// Converter style first, user CSS last so it can override.
	css := c.css
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	htmlContent = c.injector.InjectCSS(ctx, htmlContent, css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{HTML: []byte(htmlContent), Charts: ids.Count()}
	if len(input.Notebook.Cells) == 0 {
		res.Warnings = append(res.Warnings, "notebook has no cells")
	}

	if !input.PDF {
		return res, nil
	}

	printable, err := pipeline.ResolveLocalPaths(htmlContent, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving local paths: %v", ErrPDFGeneration, err)
	}
	pdf, err := c.pdf.RenderPDF(ctx, printable)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// ExtractCharts returns one standalone page per chart output, in document
// order. Charts beyond the label list are named chart_<n>; a label count
// that differs from the chart count is reported as a warning.
func (c *Converter) ExtractCharts(ctx context.Context, input ChartInput) (out []ChartAsset, warnings []string, err error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	extractor := c.charts
	if input.PlotlyURL != "" && input.PlotlyURL != DefaultPlotlyURL {
		if extractor, err = pipeline.NewChartExtractor(c.chartTmpl, input.PlotlyURL); err != nil {
			return nil, nil, err
		}
	}

	labels := make([]pipeline.ChartLabel, len(input.Labels))
	for i, l := range input.Labels {
		labels[i] = pipeline.ChartLabel(l)
	}

	charts, err := extractor.Extract(ctx, input.Notebook, labels)
	if err != nil {
		return nil, nil, err
	}

	if len(labels) > 0 && len(labels) != len(charts) {
		warnings = append(warnings, fmt.Sprintf(
			"%d chart labels for %d charts; labels are matched by position", len(labels), len(charts)))
	}

	out = make([]ChartAsset, len(charts))
	for i, ch := range charts {
		out[i] = ChartAsset{
			ChartLabel: ChartLabel(ch.ChartLabel),
			Index:      ch.Index,
			Cell:       ch.Figure.Cell,
			FileName:   ch.Name + ".html",
			HTML:       []byte(ch.HTML),
		}
	}
	return out, warnings, nil
}

// Styles lists the embedded style names.
func (c *Converter) Styles() []string {
	return assets.NewEmbeddedLoader().Styles()
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdf != nil {
		return c.pdf.Close()
	}
	return nil
}

// resolveStyle resolves the style option (name, path, or CSS content) to CSS.
func (c *Converter) resolveStyle() error {
	input := c.cfg.style
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.css = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.css = input
		return nil
	}

	css, err := c.loader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.css = css
	return nil
}

// pageTitle picks the first non-empty of: the configured title, the notebook
// title, the first level-1 markdown heading, the file name without extension.
func pageTitle(input Input, page *PageSettings) string {
	if page.Title != "" {
		return page.Title
	}
	if t := input.Notebook.Metadata.Title; t != "" {
		return t
	}
	for _, cell := range input.Notebook.Cells {
		if cell.Type != notebook.CellMarkdown {
			continue
		}
		if h := markup.FirstHeading(cell.Source); h != "" {
			return h
		}
	}
	if input.Name != "" {
		base := filepath.Base(input.Name)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return fallbackTitle
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
