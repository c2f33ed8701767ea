package nb2html

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-nb2html/internal/dateutil"
	"github.com/alnah/go-nb2html/internal/fileutil"
	"github.com/alnah/go-nb2html/internal/notebook"
)

// Notebook is a decoded notebook. Build one with ParseNotebook or LoadNotebook.
type Notebook = notebook.Document

// Cell and Output are the parts of a Notebook.
type (
	Cell   = notebook.Cell
	Output = notebook.Output
)

// DefaultPlotlyURL is the chart library referenced by rendered pages.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.27.0.min.js"

// Field length limits for page settings and chart labels.
const (
	MaxTitleLength       = 200
	MaxSubtitleLength    = 300
	MaxLabelLength       = 100
	MaxURLLength         = 2048
	MaxNameLength        = 100
	MaxDescriptionLength = 300
)

// Input contains conversion parameters.
type Input struct {
	Notebook  *Notebook     // decoded notebook (required)
	Name      string        // source file name, used as the last title fallback
	Page      *PageSettings // header, footer and script settings (nil = defaults)
	CSS       string        // extra CSS appended after the converter style
	SourceDir string        // directory for relative image links in PDF output
	PDF       bool          // also print the page to PDF
}

// PageSettings configures the page around the cells.
type PageSettings struct {
	Title     string // <title>; empty uses the notebook title or first heading
	Heading   string // header heading, omitted when empty
	Subtitle  string // italic line under the heading, omitted when empty
	Date      string // dateline text, or "auto[:FORMAT]" for the render date
	BackLink  *Link  // header and footer navigation link, omitted when nil
	PlotlyURL string // chart library script; empty uses DefaultPlotlyURL
	Language  string // code cell language when the notebook names none
}

// Link represents a clickable link.
type Link struct {
	Label string
	URL   string
}

// Validate checks field lengths and that BackLink is complete.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"title", p.Title, MaxTitleLength},
		{"heading", p.Heading, MaxTitleLength},
		{"subtitle", p.Subtitle, MaxSubtitleLength},
		{"plotlyURL", p.PlotlyURL, MaxURLLength},
		{"date", p.Date, MaxSubtitleLength},
	}
	for _, f := range fields {
		if err := checkLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	if _, err := dateutil.Resolve(p.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return p.BackLink.Validate()
}

// Validate checks that a link has both a label and a URL.
// Returns nil if l is nil.
func (l *Link) Validate() error {
	if l == nil {
		return nil
	}
	if l.Label == "" || l.URL == "" {
		return fmt.Errorf("%w: label and URL are both required", ErrInvalidLink)
	}
	if err := checkLength("link label", l.Label, MaxLabelLength); err != nil {
		return err
	}
	return checkLength("link URL", l.URL, MaxURLLength)
}

// ChartLabel names an extracted chart. Name becomes the file name
// (<name>.html) and Description the page title.
type ChartLabel struct {
	Name        string
	Description string
}

// ChartInput contains chart extraction parameters.
type ChartInput struct {
	Notebook  *Notebook    // decoded notebook (required)
	Labels    []ChartLabel // assigned to charts by position
	PlotlyURL string       // empty uses DefaultPlotlyURL
}

// Validate checks the label list: names must be usable as file names and
// unique.
func (in ChartInput) Validate() error {
	if in.Notebook == nil {
		return ErrEmptyNotebook
	}
	if err := checkLength("plotlyURL", in.PlotlyURL, MaxURLLength); err != nil {
		return err
	}
	seen := make(map[string]int, len(in.Labels))
	for i, l := range in.Labels {
		if err := fileutil.ValidateBaseName(l.Name); err != nil {
			return fmt.Errorf("%w: labels[%d]: %v", ErrInvalidChartLabel, i, err)
		}
		if len(l.Name) > MaxNameLength || len(l.Description) > MaxDescriptionLength {
			return fmt.Errorf("%w: labels[%d] %q is too long", ErrInvalidChartLabel, i, l.Name)
		}
		if j, dup := seen[l.Name]; dup {
			return fmt.Errorf("%w: labels[%d] %q duplicates labels[%d]", ErrInvalidChartLabel, i, l.Name, j)
		}
		if n, ok := fallbackChartNumber(l.Name); ok && n > len(in.Labels) {
			return fmt.Errorf("%w: labels[%d] %q is reserved for unlabeled charts", ErrInvalidChartLabel, i, l.Name)
		}
		seen[l.Name] = i
	}
	return nil
}

// fallbackChartNumber reports whether name has the chart_<n> form given to
// charts past the end of the label list.
func fallbackChartNumber(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, "chart_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || strconv.Itoa(n) != digits {
		return 0, false
	}
	return n, true
}

// ChartAsset is one standalone chart page.
type ChartAsset struct {
	ChartLabel
	Index    int    // position among the notebook's charts, from 0
	Cell     int    // index of the producing cell in the notebook
	FileName string // Name + ".html"
	HTML     []byte
}

// Result contains the output of a conversion.
type Result struct {
	HTML     []byte   // complete page
	PDF      []byte   // printed page, nil unless Input.PDF was set
	Charts   int      // chart containers on the page
	Warnings []string // non-fatal conditions worth reporting
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	style          string
	assetPath      string
	engine         string
	highlight      bool
	highlightStyle string
	sanitize       bool
}

// defaultTimeout bounds PDF printing when the context has no deadline.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF printing timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("nb2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects the page stylesheet. The value is a style name
// ("default", "dark"), a path to a CSS file, or CSS text.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.style = style
	}
}

// WithAssetPath loads styles and templates from dir before falling back to
// the embedded ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithMarkdownEngine selects the markdown engine: "basic" (default) or
// "goldmark".
func WithMarkdownEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithHighlighting highlights code cell input with the named chroma style.
// An empty style uses "github".
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithHTMLSanitizer filters text/html outputs through a bluemonday policy.
func WithHTMLSanitizer() Option {
	return func(c *Converter) {
		c.cfg.sanitize = true
	}
}

// WithClock sets the time source for "auto" datelines.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// WithPDFRenderer replaces the headless Chrome printer.
func WithPDFRenderer(r PDFRenderer) Option {
	return func(c *Converter) {
		c.pdf = r
	}
}

func checkLength(name, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, name, len(value), maxLength)
	}
	return nil
}
