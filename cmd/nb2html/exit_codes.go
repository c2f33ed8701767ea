package main

import (
	"errors"
	"fmt"
	"os"

	nb2html "github.com/alnah/go-nb2html"
	"github.com/alnah/go-nb2html/internal/config"
	"github.com/alnah/go-nb2html/internal/hints"
)

// Exit codes for the nb2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing or unreadable notebook, unwritable output
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, nb2html.ErrBrowserConnect) ||
		errors.Is(err, nb2html.ErrPageCreate) ||
		errors.Is(err, nb2html.ErrPageLoad) ||
		errors.Is(err, nb2html.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, nb2html.ErrNotebookNotFound) ||
		errors.Is(err, nb2html.ErrInvalidNotebook) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, nb2html.ErrInvalidChartLabel) ||
		errors.Is(err, nb2html.ErrInvalidLink) ||
		errors.Is(err, nb2html.ErrInvalidDate) ||
		errors.Is(err, nb2html.ErrFieldTooLong) ||
		errors.Is(err, nb2html.ErrStyleNotFound) ||
		errors.Is(err, nb2html.ErrTemplateNotFound) ||
		errors.Is(err, nb2html.ErrInvalidAssetPath) ||
		errors.Is(err, nb2html.ErrInvalidEngine) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns the hint suffix matching err, or "".
func hintFor(err error) string {
	var missing *missingInputError
	switch {
	case errors.As(err, &missing):
		return hints.ForNotebookNotFound(missing.path)
	case errors.Is(err, ErrNoInput):
		return hints.ForNotebookNotFound("")
	case errors.Is(err, nb2html.ErrInvalidNotebook):
		return hints.ForInvalidNotebook()
	case errors.Is(err, nb2html.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, nb2html.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, nb2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(availableStyles())
	case errors.Is(err, nb2html.ErrInvalidEngine):
		return hints.ForMarkdownEngine([]string{config.EngineBasic, config.EngineGoldmark})
	case errors.Is(err, nb2html.ErrInvalidChartLabel):
		return hints.ForChartLabels()
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Searched)
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// printError writes "Error: <err>" and its hint to stderr.
func printError(env *Environment, err error) {
	p := newPalette(env.Stderr)
	fmt.Fprintf(env.Stderr, "%s %v%s\n", p.failure.Render("Error:"), err, hintFor(err))
}
