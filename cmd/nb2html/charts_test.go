package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	nb2html "github.com/alnah/go-nb2html"
	"github.com/alnah/go-nb2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunCharts - Standalone chart extraction
// ---------------------------------------------------------------------------

func TestRunCharts_DefaultDirectory(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"sales.ipynb": chartNotebook})
	input := filepath.Join(dir, "sales.ipynb")
	env, stdout, stderr := testEnv()

	if err := runCharts(context.Background(), []string{input}, env); err != nil {
		t.Fatalf("runCharts() error = %v (stderr: %s)", err, stderr.String())
	}

	plots := filepath.Join(dir, "plots")
	want := "Reading notebook: " + input + "\n" +
		"Found 2 cells with Plotly outputs\n" +
		"  Saved: chart_1.html\n" +
		"  Saved: chart_2.html\n" +
		"\nAll charts saved to: " + plots + "\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}

	page := readFile(t, filepath.Join(plots, "chart_1.html"))
	if !strings.Contains(page, nb2html.DefaultPlotlyURL) {
		t.Error("chart page should load the default chart library")
	}
}

func TestRunCharts_LabelsFromConfig(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"sales.ipynb": chartNotebook,
		"charts.yaml": `charts:
  labels:
    - name: revenue
      description: Monthly revenue
    - name: growth
      description: Growth rate
    - name: extra
      description: Unused
`,
	})
	out := filepath.Join(dir, "exported")
	env, _, stderr := testEnv()

	args := []string{filepath.Join(dir, "sales.ipynb"), "-c", filepath.Join(dir, "charts.yaml"), "-o", out, "--plotly-url", "https://cdn.example/plotly.js"}
	if err := runCharts(context.Background(), args, env); err != nil {
		t.Fatalf("runCharts() error = %v", err)
	}

	page := readFile(t, filepath.Join(out, "revenue.html"))
	for _, want := range []string{"Monthly revenue", "https://cdn.example/plotly.js"} {
		if !strings.Contains(page, want) {
			t.Errorf("revenue.html missing %q", want)
		}
	}
	assertExists(t, filepath.Join(out, "growth.html"))
	assertMissing(t, filepath.Join(out, "extra.html"))
	if !strings.Contains(stderr.String(), "3 chart labels for 2 charts") {
		t.Errorf("stderr = %q, want label count warning", stderr.String())
	}
}

func TestRunCharts_NoCharts(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"nb.ipynb": plainNotebook})
	env, stdout, _ := testEnv()

	if err := runCharts(context.Background(), []string{filepath.Join(dir, "nb.ipynb")}, env); err != nil {
		t.Fatalf("runCharts() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Found 0 cells with Plotly outputs") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunCharts_Errors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"broken.ipynb": "{",
		"nb.txt":       plainNotebook,
		"bad.yaml": `charts:
  labels:
    - name: ../escape
`,
	})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing notebook", []string{filepath.Join(dir, "gone.ipynb")}, nb2html.ErrNotebookNotFound},
		{"invalid notebook", []string{filepath.Join(dir, "broken.ipynb")}, nb2html.ErrInvalidNotebook},
		{"wrong extension", []string{filepath.Join(dir, "nb.txt")}, ErrInvalidExtension},
		{"no input", nil, ErrNoInput},
		{"bad label", []string{filepath.Join(dir, "broken.ipynb"), "-c", filepath.Join(dir, "bad.yaml")}, config.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv()
			err := runCharts(context.Background(), tt.args, env)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runCharts() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunCharts_CountsEveryChartOutput(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"multi.ipynb": `{
	"cells": [
		{"cell_type": "code", "source": "a.show(); b.show()", "outputs": [
			{"output_type": "display_data", "data": {"application/vnd.plotly.v1+json": {"data": [{"y": [1]}]}}},
			{"output_type": "display_data", "data": {"application/vnd.plotly.v1+json": {"data": [{"y": [2]}]}}}
		]}
	]
}`})
	env, stdout, stderr := testEnv()

	if err := runCharts(context.Background(), []string{filepath.Join(dir, "multi.ipynb")}, env); err != nil {
		t.Fatalf("runCharts() error = %v (stderr: %s)", err, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Found 2 cells with Plotly outputs\n") {
		t.Errorf("stdout = %q, want one count per chart output", out)
	}
	if strings.Count(out, "  Saved: ") != 2 {
		t.Errorf("stdout = %q, want 2 saved lines", out)
	}
}
