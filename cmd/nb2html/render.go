package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	nb2html "github.com/alnah/go-nb2html"
	"github.com/alnah/go-nb2html/internal/config"
	"github.com/alnah/go-nb2html/internal/fileutil"
)

// ErrWriteOutput wraps failures to write rendered files.
var ErrWriteOutput = errors.New("failed to write output")

// Converter is what the batch needs from *nb2html.Converter.
type Converter interface {
	Convert(ctx context.Context, input nb2html.Input) (*nb2html.Result, error)
	ExtractCharts(ctx context.Context, input nb2html.ChartInput) ([]nb2html.ChartAsset, []string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*nb2html.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
	Size() int
	Close() error
}

// renderParams groups the settings shared by every notebook of a run.
type renderParams struct {
	page      *nb2html.PageSettings
	pdf       bool
	charts    bool
	chartsDir string
	labels    []nb2html.ChartLabel
	plotlyURL string
	batch     bool
}

// renderResult holds the outcome of one notebook.
type renderResult struct {
	InputPath  string
	OutputPath string
	PDFPath    string
	ChartPaths []string
	Warnings   []string
	Err        error
	Duration   time.Duration
}

// newPool builds the production converter pool.
func newPool(size int, opts []nb2html.Option) Pool {
	return &poolAdapter{pool: nb2html.NewConverterPool(size, opts...)}
}

// poolAdapter exposes *nb2html.ConverterPool through Pool.
type poolAdapter struct {
	pool *nb2html.ConverterPool
}

func (a *poolAdapter) Acquire() (Converter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (a *poolAdapter) Release(c Converter) {
	conv, ok := c.(*nb2html.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int    { return a.pool.Size() }
func (a *poolAdapter) Close() error { return a.pool.Close() }

// runRender renders one notebook or a directory of notebooks.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	env.Verbose = flags.common.verbose

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if err := mergeRenderFlags(flags, cfg); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	jobs, err := discoverNotebooks(inputPath, output)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no notebooks found in %s", ErrNoInput, inputPath)
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, nb2html.WithClock(env.Now))

	params := &renderParams{
		page:      pageSettings(cfg),
		pdf:       cfg.PDF.Enabled,
		charts:    flags.charts || flags.chartsDir != "",
		chartsDir: cfg.Output.ChartsDir,
		plotlyURL: cfg.Page.PlotlyURL,
		batch:     len(jobs) > 1,
	}
	if params.charts {
		// Positional labels only describe one notebook.
		if params.batch {
			if len(cfg.Charts.Labels) > 0 && flags.common.verbose {
				fmt.Fprintln(env.Stderr, "charts.labels ignored for directory input")
			}
		} else {
			params.labels = chartLabels(cfg)
		}
		for i := range jobs {
			jobs[i].ChartsDir = resolveChartsDir(jobs[i], params.chartsDir, params.batch)
		}
	}

	size := min(nb2html.ResolvePoolSize(flags.workers), len(jobs))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", size)
	}
	pool := newPool(size, opts)
	defer pool.Close()

	start := env.Now()
	results := renderBatch(ctx, pool, jobs, params)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if failed > 0 {
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// resolveInputPath picks the positional argument, else input.defaultPath.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultPath != "":
		return cfg.Input.DefaultPath, nil
	}
	return "", ErrNoInput
}

// renderBatch processes notebooks concurrently, one converter per worker.
// Results keep the order of jobs.
func renderBatch(ctx context.Context, pool Pool, jobs []notebookJob, params *renderParams) []renderResult {
	results := make([]renderResult, len(jobs))
	queue := make(chan int, len(jobs))
	for i := range jobs {
		queue <- i
	}
	close(queue)

	concurrency := min(pool.Size(), len(jobs))
	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range queue {
					results[idx] = renderResult{InputPath: jobs[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = renderResult{InputPath: jobs[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderNotebook(ctx, conv, jobs[idx], params)
			}
		}()
	}
	wg.Wait()
	return results
}

// renderNotebook renders one notebook. The page and, when requested, the
// charts are produced concurrently from the same decoded notebook.
func renderNotebook(ctx context.Context, conv Converter, job notebookJob, params *renderParams) renderResult {
	start := time.Now()
	res := renderResult{InputPath: job.InputPath, OutputPath: job.OutputPath}
	defer func() { res.Duration = time.Since(start) }()

	nb, err := nb2html.LoadNotebook(job.InputPath)
	if err != nil {
		res.Err = err
		return res
	}

	var (
		wg        sync.WaitGroup
		charts    []nb2html.ChartAsset
		chartWarn []string
		chartErr  error
	)
	if params.charts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			charts, chartWarn, chartErr = conv.ExtractCharts(ctx, nb2html.ChartInput{
				Notebook:  nb,
				Labels:    params.labels,
				PlotlyURL: params.plotlyURL,
			})
		}()
	}

	page, err := conv.Convert(ctx, nb2html.Input{
		Notebook:  nb,
		Name:      job.InputPath,
		Page:      params.page,
		SourceDir: filepath.Dir(job.InputPath),
		PDF:       params.pdf,
	})
	wg.Wait()
	if err != nil {
		res.Err = err
		return res
	}
	if chartErr != nil {
		res.Err = fmt.Errorf("extracting charts: %w", chartErr)
		return res
	}
	res.Warnings = append(page.Warnings, chartWarn...)

	if err := fileutil.WriteFile(job.OutputPath, page.HTML); err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return res
	}
	if page.PDF != nil {
		res.PDFPath = fileutil.ReplaceExt(job.OutputPath, ".pdf")
		if err := fileutil.WriteFile(res.PDFPath, page.PDF); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			return res
		}
	}
	res.ChartPaths, res.Err = writeCharts(job.ChartsDir, charts)
	return res
}

// writeCharts writes each chart page into dir and returns the paths.
func writeCharts(dir string, charts []nb2html.ChartAsset) ([]string, error) {
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.FileName)
		if err := fileutil.WriteFile(path, c.HTML); err != nil {
			return paths, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// printResults reports each result and returns the number of failures.
func printResults(results []renderResult, quiet, verbose bool, env *Environment) int {
	out, errOut := newPalette(env.Stdout), newPalette(env.Stderr)
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "%s %s: %v%s\n", errOut.failure.Render("FAILED"), r.InputPath, r.Err, hintFor(r.Err))
			}
			continue
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "%s %s: %s\n", errOut.warning.Render("warning"), r.InputPath, w)
		}
		if quiet {
			continue
		}

		line := fmt.Sprintf("Converted notebook saved to: %s", r.OutputPath)
		if verbose {
			line += out.muted.Render(fmt.Sprintf(" (%v)", r.Duration.Round(time.Millisecond)))
		}
		fmt.Fprintln(env.Stdout, out.success.Render(line))
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "  PDF: %s\n", r.PDFPath)
		}
		for _, p := range r.ChartPaths {
			fmt.Fprintf(env.Stdout, "  Saved: %s\n", filepath.Base(p))
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
