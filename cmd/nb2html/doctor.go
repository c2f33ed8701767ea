package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/tidwall/pretty"

	nb2html "github.com/alnah/go-nb2html"
	"github.com/alnah/go-nb2html/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"`
	Rendering renderingInfo `json:"rendering"`
	Chrome    chromeInfo    `json:"chrome"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// renderingInfo reports whether HTML pages can be produced.
type renderingInfo struct {
	OK     bool     `json:"ok"`
	Styles []string `json:"styles"`
}

// chromeInfo holds Chrome/Chromium detection results. Chrome is only
// needed for --pdf.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// smokeNotebook exercises markdown, code, stream and chart rendering.
const smokeNotebook = `{"cells": [
	{"cell_type": "markdown", "source": "# Doctor **check**"},
	{"cell_type": "code", "source": "print(1)", "outputs": [
		{"output_type": "stream", "name": "stdout", "text": "1"},
		{"output_type": "display_data", "data": {"application/vnd.plotly.v1+json": {"data": []}}}
	]}
]}`

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = HTML rendering works (warnings included), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(ctx)

	if jsonOutput {
		data, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(env.Stderr, "Error: encoding report: %v\n", err)
			return ExitGeneral
		}
		_, _ = env.Stdout.Write(pretty.Pretty(data))
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			Container:  hints.IsInContainer(),
			CI:         hints.InCI(),
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkRendering(ctx, result)
	checkChrome(result)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkRendering converts a small notebook with the embedded assets.
func checkRendering(ctx context.Context, result *doctorResult) {
	result.Rendering.Styles = availableStyles()

	conv, err := nb2html.NewConverter()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Converter setup failed: %v", err))
		return
	}
	defer conv.Close()

	nb, err := nb2html.ParseNotebook([]byte(smokeNotebook))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Notebook decoding failed: %v", err))
		return
	}
	res, err := conv.Convert(ctx, nb2html.Input{Notebook: nb})
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Rendering failed: %v", err))
		return
	}
	if res.Charts != 1 {
		result.Errors = append(result.Errors, fmt.Sprintf("Rendering produced %d chart containers, want 1", res.Charts))
		return
	}
	result.Rendering.OK = true
}

// checkChrome detects Chrome/Chromium. A missing browser only disables PDF
// output, so it is a warning.
func checkChrome(result *doctorResult) {
	chromePath := result.Env.BrowserBin
	if chromePath == "" {
		var found bool
		if chromePath, found = launcher.LookPath(); !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found; --pdf will download Chromium on first use or set ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Chrome not found at %s; --pdf will fail", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath
	out, err := exec.Command(chromePath, "--version").Output() // #nosec G204 -- browser path from env or rod lookup
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
	}
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment warns when Chrome would need its sandbox disabled.
func checkEnvironment(result *doctorResult) {
	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set; set ROD_NO_SANDBOX=1 for --pdf")
	}
}

// checkSystem verifies the temp directory used for PDF printing.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	f, err := os.CreateTemp(tmpDir, "nb2html-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = f.Close()
	_ = os.Remove(filepath.Clean(f.Name()))
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	p := newPalette(w)
	ok, warn, fail := p.success.Render("[OK]"), p.warning.Render("[WARN]"), p.failure.Render("[ERROR]")

	fmt.Fprintln(w, "nb2html doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Rendering")
	if r.Rendering.OK {
		fmt.Fprintf(w, "  %s HTML output works\n", ok)
	} else {
		fmt.Fprintf(w, "  %s HTML output failed\n", fail)
	}
	fmt.Fprintf(w, "  %s Styles: %s\n", ok, strings.Join(r.Rendering.Styles, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium (for --pdf)")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  %s Found at %s\n", ok, r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  %s Version: %s\n", ok, r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintf(w, "  %s Sandbox: enabled\n", ok)
		} else {
			fmt.Fprintf(w, "  %s Sandbox: disabled (ROD_NO_SANDBOX=1)\n", ok)
		}
	} else {
		fmt.Fprintf(w, "  %s Not found\n", warn)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  %s Platform: %s/%s\n", ok, r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  %s Container: detected\n", ok)
	}
	if r.Env.CI {
		fmt.Fprintf(w, "  %s CI: detected\n", ok)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintf(w, "  %s Temp directory: writable\n", ok)
	} else {
		fmt.Fprintf(w, "  %s Temp directory: not writable\n", fail)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range r.Warnings {
			fmt.Fprintf(w, "  %s %s\n", warn, msg)
		}
		fmt.Fprintln(w)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, msg := range r.Errors {
			fmt.Fprintf(w, "  %s %s\n", fail, msg)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
