package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chartNotebook has one markdown cell and two cells with chart outputs.
const chartNotebook = `{
	"metadata": {"language_info": {"name": "python"}},
	"cells": [
		{"cell_type": "markdown", "source": "# Revenue"},
		{"cell_type": "code", "source": "fig.show()", "outputs": [
			{"output_type": "display_data", "data": {"application/vnd.plotly.v1+json": {"data": [{"y": [1, 2]}]}}}
		]},
		{"cell_type": "code", "source": "fig2.show()", "outputs": [
			{"output_type": "display_data", "data": {"application/vnd.plotly.v1+json": {"data": [{"y": [3]}]}}}
		]}
	]
}`

// plainNotebook has no chart outputs.
const plainNotebook = `{
	"cells": [
		{"cell_type": "markdown", "source": "# Notes"},
		{"cell_type": "code", "source": "print(1)", "outputs": [
			{"output_type": "stream", "name": "stdout", "text": "1\n"}
		]}
	]
}`

// testEnv returns an environment writing to buffers with a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}
