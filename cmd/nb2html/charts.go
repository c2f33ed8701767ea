package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	flag "github.com/spf13/pflag"

	nb2html "github.com/alnah/go-nb2html"
)

// runCharts writes every chart of one notebook as a standalone page.
func runCharts(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseChartsFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	env.Verbose = flags.common.verbose

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	setIf(&cfg.Page.PlotlyURL, flags.plotlyURL)
	setIf(&cfg.Output.ChartsDir, flags.output)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	if filepath.Ext(inputPath) != notebookExt {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
	}

	quiet := flags.common.quiet
	if !quiet {
		fmt.Fprintf(env.Stdout, "Reading notebook: %s\n", inputPath)
	}
	nb, err := nb2html.LoadNotebook(inputPath)
	if err != nil {
		if errors.Is(err, nb2html.ErrNotebookNotFound) {
			return &missingInputError{path: inputPath}
		}
		return err
	}

	// Chart extraction never needs the browser or a style.
	conv, err := nb2html.NewConverter()
	if err != nil {
		return err
	}
	defer conv.Close()

	charts, warnings, err := conv.ExtractCharts(ctx, nb2html.ChartInput{
		Notebook:  nb,
		Labels:    chartLabels(cfg),
		PlotlyURL: cfg.Page.PlotlyURL,
	})
	if err != nil {
		return err
	}

	dir := cfg.Output.ChartsDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(inputPath), "plots")
	}

	p := newPalette(env.Stderr)
	for _, w := range warnings {
		fmt.Fprintf(env.Stderr, "%s %s\n", p.warning.Render("warning:"), w)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Found %d cells with Plotly outputs\n", len(charts))
	}

	paths, err := writeCharts(dir, charts)
	if !quiet {
		for _, path := range paths {
			fmt.Fprintf(env.Stdout, "  Saved: %s\n", filepath.Base(path))
		}
	}
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "\nAll charts saved to: %s\n", dir)
	}
	return nil
}
