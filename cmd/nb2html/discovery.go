package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	nb2html "github.com/alnah/go-nb2html"
)

// notebookExt is the extension of notebook files.
const notebookExt = ".ipynb"

// checkpointDir holds editor autosaves and is never converted.
const checkpointDir = ".ipynb_checkpoints"

// Sentinel errors for input discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have the .ipynb extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// missingInputError reports an input path that does not exist.
type missingInputError struct {
	path string
}

func (e *missingInputError) Error() string {
	return fmt.Sprintf("%v at %s", nb2html.ErrNotebookNotFound, e.path)
}

func (e *missingInputError) Unwrap() error {
	return nb2html.ErrNotebookNotFound
}

// notebookJob is one notebook to render.
type notebookJob struct {
	InputPath  string
	OutputPath string // HTML page
	ChartsDir  string // set when charts are extracted
}

// discoverNotebooks finds the notebooks under inputPath and their output
// paths. A file input may have any name; directories are walked for
// *.ipynb files, skipping checkpoint directories.
func discoverNotebooks(inputPath, output string) ([]notebookJob, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &missingInputError{path: inputPath}
		}
		return nil, err
	}

	if !info.IsDir() {
		if filepath.Ext(inputPath) != notebookExt {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []notebookJob{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	var jobs []notebookJob
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if d.Name() == checkpointDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != notebookExt {
			return nil
		}
		jobs = append(jobs, notebookJob{InputPath: path, OutputPath: resolveOutputPath(path, output, inputPath)})
		return nil
	})
	return jobs, err
}

// resolveOutputPath determines the HTML path for a notebook. An output
// ending in .html is used as is for a single notebook; any other output is
// a directory mirroring the input tree.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".html"

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	if baseInputDir == "" && strings.HasSuffix(output, ".html") {
		return output
	}
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(output, filepath.Dir(rel), base)
		}
	}
	return filepath.Join(output, base)
}

// resolveChartsDir returns where the charts of job go. chartsDir empty uses
// "plots" next to the page. In batch mode each notebook gets a subdirectory.
func resolveChartsDir(job notebookJob, chartsDir string, batch bool) string {
	dir := chartsDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(job.OutputPath), "plots")
	}
	if batch {
		name := strings.TrimSuffix(filepath.Base(job.InputPath), filepath.Ext(job.InputPath))
		dir = filepath.Join(dir, name)
	}
	return dir
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > nb2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, nb2html.MaxPoolSize)
	}
	return nil
}
