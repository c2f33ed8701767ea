package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-nb2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"html", "html", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"forward slash", "../x", fileutil.ErrExtensionPathTraversal},
		{"backslash", `..\x`, fileutil.ErrExtensionPathTraversal},
		{"null byte", "html\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := fileutil.ValidateExtension(tt.extension); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateBaseName - Output file names
// ---------------------------------------------------------------------------

func TestValidateBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"metrics_evaluation", false},
		{"chart_10", false},
		{"forecast.full", false},
		{"", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{`a\b`, true},
		{"a\x00", true},
	}

	for _, tt := range tests {
		err := fileutil.ValidateBaseName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateBaseName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, fileutil.ErrBaseNameInvalid) {
			t.Errorf("ValidateBaseName(%q) = %v, want ErrBaseNameInvalid", tt.input, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary file creation
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "<html><body>café</body></html>"
	path, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.Contains(filepath.Base(path), "nb2html-") || !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q does not match nb2html-*.html", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != content {
		t.Errorf("content = %q, want %q", data, content)
	}

	cleanup()
	if fileutil.FileExists(path) {
		t.Error("cleanup() did not remove the file")
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	if _, _, err := fileutil.WriteTempFile("x", "a/b"); !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		t.Errorf("WriteTempFile() error = %v, want ErrExtensionPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Output writing
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "plots", "nested", "chart.html")

	if err := fileutil.WriteFile(path, []byte("one")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fileutil.WriteFile(path, []byte("two")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "two" {
		t.Errorf("content = %q, want %q", data, "two")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
	}
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fileutil.WriteFile(filepath.Join(blocker, "out.html"), []byte("x")); err == nil {
		t.Error("WriteFile() under a regular file succeeded, want error")
	}
}

// ---------------------------------------------------------------------------
// TestPathHelpers - Small predicates
// ---------------------------------------------------------------------------

func TestPathHelpers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.ipynb")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if !fileutil.FileExists(file) || fileutil.FileExists(dir) || fileutil.FileExists(filepath.Join(dir, "x")) {
		t.Error("FileExists() misreports files and directories")
	}
	if !fileutil.DirExists(dir) || fileutil.DirExists(file) {
		t.Error("DirExists() misreports files and directories")
	}

	for input, want := range map[string]bool{"dark": false, "./dark.yaml": true, `C:\cfg`: true} {
		if got := fileutil.IsFilePath(input); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", input, got, want)
		}
	}
	for input, want := range map[string]bool{"https://x.io": true, "http://x": true, "ftp://x": false, "x.html": false} {
		if got := fileutil.IsURL(input); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", input, got, want)
		}
	}
	if !fileutil.IsCSS("body { color: red; }") || fileutil.IsCSS("dark") {
		t.Error("IsCSS() misreports CSS text")
	}
	if got := fileutil.ReplaceExt("nb/solar.ipynb", ".html"); got != "nb/solar.html" {
		t.Errorf("ReplaceExt() = %q, want nb/solar.html", got)
	}
}
