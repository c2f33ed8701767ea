package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds the page header and script flags.
type pageFlags struct {
	title     string
	heading   string
	subtitle  string
	date      string
	backLabel string
	backURL   string
	plotlyURL string
	language  string
}

// renderingFlags holds flags that change how cells are rendered.
type renderingFlags struct {
	style          string
	assetPath      string
	engine         string
	highlight      bool
	highlightStyle string
	sanitize       bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	output    string
	workers   int
	timeout   string
	pdf       bool
	charts    bool
	chartsDir string
	page      pageFlags
	rendering renderingFlags
}

// chartsFlags holds all flags for the charts command.
type chartsFlags struct {
	common    commonFlags
	output    string
	plotlyURL string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and diagnostics")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.title, "title", "", "page title (\"\" = notebook title or first H1)")
	fs.StringVar(&f.heading, "heading", "", "header heading")
	fs.StringVar(&f.subtitle, "subtitle", "", "italic line under the heading")
	fs.StringVar(&f.date, "date", "", "dateline text, \"auto\" or \"auto:FORMAT\"")
	fs.StringVar(&f.backLabel, "back-label", "", "navigation link label")
	fs.StringVar(&f.backURL, "back-url", "", "navigation link URL")
	fs.StringVar(&f.plotlyURL, "plotly-url", "", "chart library script URL")
	fs.StringVar(&f.language, "language", "", "code language when the notebook names none")
}

func addRenderingFlags(fs *flag.FlagSet, f *renderingFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or CSS text")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: basic, goldmark")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight code input")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for highlighting (implies --highlight)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize HTML outputs")
}

// parseRenderFlags parses render command flags and returns positional args.
// Usage goes to w on parse errors and -h.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet(cmdRender, flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "also print each page to PDF")
	fs.BoolVar(&f.charts, "charts", false, "also extract charts as standalone pages")
	fs.StringVar(&f.chartsDir, "charts-dir", "", "chart output directory (implies --charts)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addRenderingFlags(fs, &f.rendering)

	fs.SetOutput(io.Discard)
	fs.Usage = func() { printRenderUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseChartsFlags parses charts command flags and returns positional args.
func parseChartsFlags(args []string, w io.Writer) (*chartsFlags, []string, error) {
	fs := flag.NewFlagSet(cmdCharts, flag.ContinueOnError)
	f := &chartsFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "chart output directory")
	fs.StringVar(&f.plotlyURL, "plotly-url", "", "chart library script URL")
	addCommonFlags(fs, &f.common)

	fs.SetOutput(io.Discard)
	fs.Usage = func() { printChartsUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// usageError keeps flag.ErrHelp as is and wraps everything else in ErrUsage.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
