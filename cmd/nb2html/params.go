package main

import (
	"fmt"

	nb2html "github.com/alnah/go-nb2html"
	"github.com/alnah/go-nb2html/internal/assets"
	"github.com/alnah/go-nb2html/internal/config"
)

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeRenderFlags merges CLI flags into cfg. CLI values override config
// values. The merged config is validated again.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) error {
	setIf(&cfg.PDF.Timeout, f.timeout)
	setIf(&cfg.Output.ChartsDir, f.chartsDir)
	if f.pdf {
		cfg.PDF.Enabled = true
	}

	setIf(&cfg.Page.Title, f.page.title)
	setIf(&cfg.Page.Heading, f.page.heading)
	setIf(&cfg.Page.Subtitle, f.page.subtitle)
	setIf(&cfg.Page.Date, f.page.date)
	setIf(&cfg.Page.BackLink.Label, f.page.backLabel)
	setIf(&cfg.Page.BackLink.URL, f.page.backURL)
	setIf(&cfg.Page.PlotlyURL, f.page.plotlyURL)
	setIf(&cfg.Page.Language, f.page.language)

	setIf(&cfg.Style, f.rendering.style)
	setIf(&cfg.Assets.BasePath, f.rendering.assetPath)
	setIf(&cfg.Markdown.Engine, f.rendering.engine)
	if f.rendering.highlight || f.rendering.highlightStyle != "" {
		cfg.Highlight.Enabled = true
	}
	setIf(&cfg.Highlight.Style, f.rendering.highlightStyle)
	if f.rendering.sanitize {
		cfg.SanitizeHTML = true
	}

	return cfg.Validate()
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// converterOptions translates cfg into converter options.
func converterOptions(cfg *config.Config) ([]nb2html.Option, error) {
	opts := []nb2html.Option{
		nb2html.WithStyle(cfg.Style),
		nb2html.WithMarkdownEngine(cfg.Markdown.Engine),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, nb2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, nb2html.WithHighlighting(cfg.Highlight.Style))
	}
	if cfg.SanitizeHTML {
		opts = append(opts, nb2html.WithHTMLSanitizer())
	}
	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, nb2html.WithTimeout(timeout))
	}
	return opts, nil
}

// pageSettings builds the page settings from cfg.
func pageSettings(cfg *config.Config) *nb2html.PageSettings {
	page := &nb2html.PageSettings{
		Title:     cfg.Page.Title,
		Heading:   cfg.Page.Heading,
		Subtitle:  cfg.Page.Subtitle,
		Date:      cfg.Page.Date,
		PlotlyURL: cfg.Page.PlotlyURL,
		Language:  cfg.Page.Language,
	}
	if cfg.Page.BackLink.Label != "" {
		page.BackLink = &nb2html.Link{Label: cfg.Page.BackLink.Label, URL: cfg.Page.BackLink.URL}
	}
	return page
}

// chartLabels converts the configured labels.
func chartLabels(cfg *config.Config) []nb2html.ChartLabel {
	labels := make([]nb2html.ChartLabel, len(cfg.Charts.Labels))
	for i, l := range cfg.Charts.Labels {
		labels[i] = nb2html.ChartLabel{Name: l.Name, Description: l.Description}
	}
	return labels
}

// availableStyles lists the embedded style names for hints.
func availableStyles() []string {
	return assets.NewEmbeddedLoader().Styles()
}
