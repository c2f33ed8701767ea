package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return p
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Page.PlotlyURL != DefaultPlotlyURL {
		t.Errorf("Page.PlotlyURL = %q, want %q", cfg.Page.PlotlyURL, DefaultPlotlyURL)
	}
	if cfg.Style != "default" {
		t.Errorf("Style = %q, want default", cfg.Style)
	}
	if cfg.Markdown.Engine != EngineBasic {
		t.Errorf("Markdown.Engine = %q, want %q", cfg.Markdown.Engine, EngineBasic)
	}
	if cfg.PDF.Enabled || cfg.Highlight.Enabled || cfg.SanitizeHTML {
		t.Error("optional features enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field validation
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid labels",
			mutate: func(c *Config) { c.Charts.Labels = []ChartLabel{{Name: "a_b-1", Description: "A"}} },
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Page.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "url too long",
			mutate:  func(c *Config) { c.Page.PlotlyURL = strings.Repeat("u", MaxURLLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Markdown.Engine = "pandoc" },
			wantErr: ErrInvalidValue,
		},
		{
			name:   "engine case insensitive",
			mutate: func(c *Config) { c.Markdown.Engine = "GoldMark" },
		},
		{
			name:   "dateline preset",
			mutate: func(c *Config) { c.Page.Date = "auto:iso" },
		},
		{
			name:    "dateline unclosed bracket",
			mutate:  func(c *Config) { c.Page.Date = "auto:[on YYYY" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "back link without url",
			mutate:  func(c *Config) { c.Page.BackLink.Label = "Back" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "label name with separator",
			mutate:  func(c *Config) { c.Charts.Labels = []ChartLabel{{Name: "../evil"}} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "empty label name",
			mutate:  func(c *Config) { c.Charts.Labels = []ChartLabel{{Description: "x"}} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "duplicate label names",
			mutate:  func(c *Config) { c.Charts.Labels = []ChartLabel{{Name: "a"}, {Name: "a"}} },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "description too long",
			mutate:  func(c *Config) { c.Charts.Labels = []ChartLabel{{Name: "a", Description: strings.Repeat("d", MaxDescriptionLength+1)}} },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "bad pdf timeout",
			mutate:  func(c *Config) { c.PDF.Timeout = "soon" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative pdf timeout",
			mutate:  func(c *Config) { c.PDF.Timeout = "-5s" },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPDFConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	got, err := PDFConfig{Timeout: "90s"}.TimeoutDuration()
	if err != nil || got != 90*time.Second {
		t.Errorf("TimeoutDuration(90s) = %v, %v, want 1m30s", got, err)
	}
	got, err = PDFConfig{}.TimeoutDuration()
	if err != nil || got != 0 {
		t.Errorf("TimeoutDuration(empty) = %v, %v, want 0", got, err)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

const fullConfig = `
input:
  defaultPath: notebooks/solar.ipynb
output:
  defaultDir: public
  chartsDir: public/plots
page:
  title: Solar PV in Spain
  heading: Solar Photovoltaic Generation in Spain
  subtitle: Complete notebook with all code and interactive visualizations
  backLink:
    label: "← Back to Case Study"
    url: ../projects/solar-pv-spain-forecast
  language: python
style: dark
markdown:
  engine: goldmark
highlight:
  enabled: true
  style: monokai
sanitizeHTML: true
charts:
  labels:
    - name: metrics_evaluation
      description: "Metrics Evaluation: Energy Sold, Capacity Installed, Installations"
    - name: decomposition
      description: Time Series Decomposition
pdf:
  enabled: true
  timeout: 2m
`

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "site.yaml", fullConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := &Config{
		Input:  InputConfig{DefaultPath: "notebooks/solar.ipynb"},
		Output: OutputConfig{DefaultDir: "public", ChartsDir: "public/plots"},
		Page: PageConfig{
			Title:     "Solar PV in Spain",
			Heading:   "Solar Photovoltaic Generation in Spain",
			Subtitle:  "Complete notebook with all code and interactive visualizations",
			BackLink:  Link{Label: "← Back to Case Study", URL: "../projects/solar-pv-spain-forecast"},
			PlotlyURL: DefaultPlotlyURL,
			Language:  "python",
		},
		Style:        "dark",
		Markdown:     MarkdownConfig{Engine: EngineGoldmark},
		Highlight:    HighlightConfig{Enabled: true, Style: "monokai"},
		SanitizeHTML: true,
		Charts: ChartsConfig{Labels: []ChartLabel{
			{Name: "metrics_evaluation", Description: "Metrics Evaluation: Energy Sold, Capacity Installed, Installations"},
			{Name: "decomposition", Description: "Time Series Decomposition"},
		}},
		PDF: PDFConfig{Enabled: true, Timeout: "2m"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown key", "page:\n  titel: x\n", ErrConfigParse},
		{"wrong type", "charts: 3\n", ErrConfigParse},
		{"empty file", "", ErrConfigParse},
		{"invalid value", "markdown:\n  engine: rst\n", ErrInvalidValue},
	}

	for i, tt := range tests {
		path := writeConfig(t, dir, "c"+string(rune('a'+i))+".yaml", tt.content)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(filepath.Join(dir, "nope.yaml")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("surely-not-a-config-name-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || len(nf.Searched) < 2 {
			t.Errorf("LoadConfig() error = %v, want NotFoundError listing .yaml and .yml paths", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "blog.yml", "page:\n  heading: From name\n")
	t.Chdir(dir)

	cfg, err := LoadConfig("blog")
	if err != nil {
		t.Fatalf("LoadConfig(blog) error = %v", err)
	}
	if cfg.Page.Heading != "From name" {
		t.Errorf("Page.Heading = %q, want %q", cfg.Page.Heading, "From name")
	}
	if cfg.Style != "default" || cfg.Markdown.Engine != EngineBasic {
		t.Errorf("defaults not applied: style=%q engine=%q", cfg.Style, cfg.Markdown.Engine)
	}
}

func TestDecodeStrict_TooLarge(t *testing.T) {
	t.Parallel()

	data := make([]byte, MaxInputSize+1)
	if err := decodeStrict(data, &Config{}); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("decodeStrict() error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "plotlyURL:") || !strings.Contains(string(data), DefaultPlotlyURL) {
		t.Errorf("Marshal() = %s, want plotlyURL key", data)
	}
}
