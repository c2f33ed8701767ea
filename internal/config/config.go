// Package config loads the YAML configuration of nb2html.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-nb2html/internal/dateutil"
	"github.com/alnah/go-nb2html/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxSubtitleLength    = 300
	MaxLabelLength       = 100
	MaxURLLength         = 2048
	MaxPathLength        = 4096
	MaxNameLength        = 100
	MaxDescriptionLength = 300
	MaxLanguageLength    = 30
	MaxChartLabels       = 1000
)

// Engine names accepted by markdown.engine.
const (
	EngineBasic    = "basic"
	EngineGoldmark = "goldmark"
)

// DefaultPlotlyURL is the chart library loaded by rendered pages.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.27.0.min.js"

// Config holds all configuration for notebook rendering.
type Config struct {
	Input        InputConfig     `yaml:"input"`
	Output       OutputConfig    `yaml:"output"`
	Page         PageConfig      `yaml:"page"`
	Style        string          `yaml:"style"`
	Assets       AssetsConfig    `yaml:"assets"`
	Markdown     MarkdownConfig  `yaml:"markdown"`
	Highlight    HighlightConfig `yaml:"highlight"`
	SanitizeHTML bool            `yaml:"sanitizeHTML"`
	Charts       ChartsConfig    `yaml:"charts"`
	PDF          PDFConfig       `yaml:"pdf"`
}

// InputConfig defines where notebooks are read from.
type InputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // notebook or directory used when none is given
}

// OutputConfig defines where rendered files go.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the notebook
	ChartsDir  string `yaml:"chartsDir"`  // empty = "<outputDir>/plots"
}

// PageConfig defines the page around the cells.
type PageConfig struct {
	Title     string `yaml:"title"` // empty = first H1, then file name
	Heading   string `yaml:"heading"`
	Subtitle  string `yaml:"subtitle"`
	Date      string `yaml:"date"` // literal text, "auto" or "auto:FORMAT"
	BackLink  Link   `yaml:"backLink"`
	PlotlyURL string `yaml:"plotlyURL"`
	Language  string `yaml:"language"` // code class when the notebook names none
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// MarkdownConfig selects the markdown engine.
type MarkdownConfig struct {
	Engine string `yaml:"engine"` // "basic" (default) or "goldmark"
}

// HighlightConfig controls code input highlighting.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name
}

// ChartsConfig defines chart extraction options.
type ChartsConfig struct {
	Labels []ChartLabel `yaml:"labels"`
}

// ChartLabel names the chart at the same position in the notebook.
type ChartLabel struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// PDFConfig controls PDF export.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, empty = converter default
}

// TimeoutDuration parses PDF.Timeout. Empty yields zero.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout %q", ErrInvalidValue, p.Timeout)
	}
	return d, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Page:     PageConfig{PlotlyURL: DefaultPlotlyURL},
		Style:    "default",
		Markdown: MarkdownConfig{Engine: EngineBasic},
	}
}

// applyDefaults fills unset fields that have a non-zero default.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Page.PlotlyURL == "" {
		c.Page.PlotlyURL = def.Page.PlotlyURL
	}
	if c.Style == "" {
		c.Style = def.Style
	}
	if c.Markdown.Engine == "" {
		c.Markdown.Engine = def.Markdown.Engine
	}
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultPath", c.Input.DefaultPath, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.chartsDir", c.Output.ChartsDir, MaxPathLength},
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.heading", c.Page.Heading, MaxTitleLength},
		{"page.subtitle", c.Page.Subtitle, MaxSubtitleLength},
		{"page.date", c.Page.Date, MaxSubtitleLength},
		{"page.backLink.label", c.Page.BackLink.Label, MaxLabelLength},
		{"page.backLink.url", c.Page.BackLink.URL, MaxURLLength},
		{"page.plotlyURL", c.Page.PlotlyURL, MaxURLLength},
		{"page.language", c.Page.Language, MaxLanguageLength},
		{"style", c.Style, MaxNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Markdown.Engine) {
	case "", EngineBasic, EngineGoldmark:
	default:
		return fmt.Errorf("%w: markdown.engine %q (must be %s or %s)", ErrInvalidValue, c.Markdown.Engine, EngineBasic, EngineGoldmark)
	}

	if _, err := dateutil.Resolve(c.Page.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: page.date: %v", ErrInvalidValue, err)
	}

	if (c.Page.BackLink.Label == "") != (c.Page.BackLink.URL == "") {
		return fmt.Errorf("%w: page.backLink needs both label and url", ErrInvalidValue)
	}

	if len(c.Charts.Labels) > MaxChartLabels {
		return fmt.Errorf("%w: charts.labels has %d entries (max %d)", ErrInvalidValue, len(c.Charts.Labels), MaxChartLabels)
	}
	seen := make(map[string]int, len(c.Charts.Labels))
	for i, l := range c.Charts.Labels {
		field := fmt.Sprintf("charts.labels[%d]", i)
		if err := fileutil.ValidateBaseName(l.Name); err != nil {
			return fmt.Errorf("%w: %s.name: %v", ErrInvalidValue, field, err)
		}
		if err := validateFieldLength(field+".name", l.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".description", l.Description, MaxDescriptionLength); err != nil {
			return err
		}
		if j, dup := seen[l.Name]; dup {
			return fmt.Errorf("%w: %s.name %q duplicates charts.labels[%d]", ErrInvalidValue, field, l.Name, j)
		}
		seen[l.Name] = i
	}

	if _, err := c.PDF.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
